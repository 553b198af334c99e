package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain ascii", input: "Kant, Immanuel", want: true},
		{name: "empty", input: "", want: true},
		{name: "accented", input: "Kafká", want: false},
		{name: "cyrillic", input: "Достоевский", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsASCII(tt.input))
		})
	}
}

func TestFoldToASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii unchanged", input: "Kafka", want: "Kafka"},
		{name: "acute accent", input: "Kafká", want: "Kafka"},
		{name: "umlaut", input: "Björk", want: "Bjork"},
		{name: "eszett expands", input: "Straße", want: "Strasse"},
		{name: "ligature", input: "Œuvre", want: "OEuvre"},
		{name: "greek", input: "Ωμεγα", want: "Omega"},
		{name: "cyrillic", input: "Чехов", want: "Chekhov"},
		{name: "unmapped characters dropped", input: "a☃b", want: "ab"},
		{name: "no decomposition fallback", input: "ėlan", want: "lan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldToASCII(tt.input))
		})
	}
}

func TestAtoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "spaces",
			input: "The Dukes of Hazzard",
			want:  []string{"the", "dukes", "of", "hazzard"},
		},
		{
			name:  "punctuation runs collapse",
			input: "Kant, Immanuel",
			want:  []string{"kant", "immanuel"},
		},
		{
			name:  "leading and trailing delimiters",
			input: "-foo.bar-",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "digits kept",
			input: "Area 51",
			want:  []string{"area", "51"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Atoms(tt.input))
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "tdoh", Initials(Atoms("The Dukes of Hazzard")))
	assert.Equal(t, "himym", Initials(Atoms("how i met your mother")))
	assert.Equal(t, "", Initials(nil))
}

func TestCapitals(t *testing.T) {
	assert.Equal(t, "OF", Capitals("OmniFocus"))
	assert.Equal(t, "GC", Capitals("Google Chrome"))
	assert.Equal(t, "M3T", Capitals("Mp3 Tag"))
	assert.Equal(t, "", Capitals("lowercase only"))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"immanuel", "kant"}, Words("  immanuel   kant "))
	assert.Empty(t, Words("   "))
	assert.Empty(t, Words(""))
}
