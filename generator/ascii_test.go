package generator

import (
	"math/rand"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	cases := map[string]string{
		"Nguyễn Văn An":   "Nguyen Van An",
		"Trần Thị Hương":  "Tran Thi Huong",
		"Đỗ Đình Phúc":    "Do Dinh Phuc",
		"Lê Ngọc Ánh":     "Le Ngoc Anh",
		"Vũ Hữu Trường":   "Vu Huu Truong",
		"Phạm Thúy Quỳnh": "Pham Thuy Quynh",
		"":                "",
		"Already ASCII":   "Already ASCII",
	}

	for input, want := range cases {
		assert.Equal(t, want, RemoveDiacritics(input), "input %q", input)
	}
}

func TestGeneratedNamesArePureASCII(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		name, _ := GenerateName(rng)
		for _, r := range name {
			ok := r == ' ' || (unicode.IsLetter(r) && r < 128)
			if !ok {
				t.Fatalf("name %q contains non-ASCII rune %q", name, r)
			}
		}
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Nguyen Van An", TitleCase("nguyen VAN an"))
	assert.Equal(t, "A", TitleCase("a"))
	assert.Equal(t, "", TitleCase(""))
}
