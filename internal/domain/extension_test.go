package domain

import "testing"

func TestExtensionSet_CaseInsensitive(t *testing.T) {
	s := DefaultExtensions()

	cases := []struct {
		ext  string
		want bool
	}{
		{".jpg", true},
		{".JPG", true},
		{".Jpeg", true},
		{".rar", true},
		{".exe", false},
		{"", false},
		{"jpg", false}, // 必须带前导 '.'
	}
	for _, c := range cases {
		if got := s.Contains(c.ext); got != c.want {
			t.Fatalf("Contains(%q)=%v，期望 %v", c.ext, got, c.want)
		}
	}
	if s.Len() != 19 {
		t.Fatalf("期望 19 个内置扩展名，实际 %d", s.Len())
	}
}

func TestNewExtensionSet_Normalize(t *testing.T) {
	s := NewExtensionSet("JPG", " .Png ", "", ".")
	got := s.List()
	if len(got) != 2 || got[0] != ".jpg" || got[1] != ".png" {
		t.Fatalf("规范化结果不符合预期：%v", got)
	}

	var zero ExtensionSet
	if zero.Contains(".jpg") {
		t.Fatalf("零值集合不应匹配任何扩展名")
	}
}
