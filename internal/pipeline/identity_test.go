package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIdentityEmail(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Contact: jane.doe@example.com", "jane.doe@example.com"},
		{"plus_tag", "jane+jobs@mail.example.org somewhere", "jane+jobs@mail.example.org"},
		{"first_wins", "a@b.com then c@d.org", "a@b.com"},
		{"short_tld_rejected", "broken@host.c", NotFound},
		{"missing", "no contact details here", NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractIdentity(tc.text)
			assert.Equal(t, tc.want, got.Email)
		})
	}
}

func TestExtractIdentityProfileURL(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"full", "https://www.linkedin.com/in/jane-doe/", "https://www.linkedin.com/in/jane-doe/"},
		{"schemeless", "see linkedin.com/in/jane-doe for more", "linkedin.com/in/jane-doe"},
		{"company", "linkedin.com/company/acme-corp", "linkedin.com/company/acme-corp"},
		{"missing", "github.com/janedoe", NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractIdentity(tc.text)
			assert.Equal(t, tc.want, got.ProfileURL)
		})
	}
}

func TestExtractIdentityName(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"all_caps_header", "JANE DOE\nSoftware Engineer\njane@example.com", "Jane Doe"},
		{"title_case_header", "Jane Doe\nSoftware Engineer", "Jane Doe"},
		{"label", "resume of\nname: jane doe\nskills below", "Jane Doe"},
		{"too_many_words", "JANE ALPHA BETA GAMMA DELTA\nother", NotFound},
		{"missing", "skills: python, docker\n- built stuff", NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractIdentity(tc.text)
			assert.Equal(t, tc.want, got.Name)
		})
	}
}

func TestExtractIdentityHeaderRegionOnly(t *testing.T) {
	var text string
	for i := 0; i < headerLines; i++ {
		text += "filler line with no pattern match 123\n"
	}
	text += "JANE DOE\n"

	got := ExtractIdentity(text)
	assert.Equal(t, NotFound, got.Name, "name outside the header region must not match")
}
