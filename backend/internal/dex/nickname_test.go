package dex

import "testing"

func TestRawNickname_Plain(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Tyrra", "tyrra"},
		{"  Horus  ", "horus"},
		{"Flame Chaser", "flame chaser"},
	}
	for _, c := range cases {
		if got := rawNickname(c.name); got != c.expected {
			t.Errorf("rawNickname(%q) = %q, expected %q", c.name, got, c.expected)
		}
	}
}

func TestRawNickname_CommaKeepsLastClause(t *testing.T) {
	got := rawNickname("Guardian of the Sacred City, Athena")
	if got != "athena" {
		t.Errorf("Expected 'athena', got %q", got)
	}
}

func TestRawNickname_TitleKeepsFirstClause(t *testing.T) {
	got := rawNickname("Zeus, the King of Gods")
	if got != "zeus" {
		t.Errorf("Expected 'zeus', got %q", got)
	}
}

func TestRawNickname_TitleRuleNeedsTrailingSpace(t *testing.T) {
	// "theatrical" starts with "the" but is not a title clause
	got := rawNickname("Mask, theatrical spirit")
	if got != "theatrical spirit" {
		t.Errorf("Expected 'theatrical spirit', got %q", got)
	}
}

func TestRawNickname_MultipleCommas(t *testing.T) {
	got := rawNickname("Keeper of Gold, Guardian, Aurum")
	if got != "aurum" {
		t.Errorf("Expected 'aurum', got %q", got)
	}
}

func TestRawNickname_StripsAwoken(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Awoken Horus", "horus"},
		{"Reincarnated Lilith", "reincarnated lilith"},
	}
	for _, c := range cases {
		if got := rawNickname(c.name); got != c.expected {
			t.Errorf("rawNickname(%q) = %q, expected %q", c.name, got, c.expected)
		}
	}
}

func TestElectNickname_Plurality(t *testing.T) {
	members := []*Entity{
		{RawNickname: "horus"},
		{RawNickname: "horus"},
		{RawNickname: "sun deity"},
	}
	if got := electNickname(members); got != "horus" {
		t.Errorf("Expected 'horus', got %q", got)
	}
}

func TestElectNickname_TieGoesAlphabetical(t *testing.T) {
	members := []*Entity{
		{RawNickname: "zeta"},
		{RawNickname: "alpha"},
	}
	if got := electNickname(members); got != "alpha" {
		t.Errorf("Expected 'alpha', got %q", got)
	}
}

func TestElectNickname_OrderIndependent(t *testing.T) {
	forward := []*Entity{
		{RawNickname: "ceres"},
		{RawNickname: "earth deity"},
		{RawNickname: "ceres"},
		{RawNickname: "earth deity"},
	}
	reversed := []*Entity{
		{RawNickname: "earth deity"},
		{RawNickname: "ceres"},
		{RawNickname: "earth deity"},
		{RawNickname: "ceres"},
	}
	if electNickname(forward) != electNickname(reversed) {
		t.Error("Election result depends on member order")
	}
	if got := electNickname(forward); got != "ceres" {
		t.Errorf("Expected 'ceres', got %q", got)
	}
}

func TestElectNickname_SingleMember(t *testing.T) {
	members := []*Entity{{RawNickname: "tyrra"}}
	if got := electNickname(members); got != "tyrra" {
		t.Errorf("Expected 'tyrra', got %q", got)
	}
}
