package cart

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidDescriptor = errors.New("invalid custom jersey descriptor")

// CustomDescriptor describes a customized jersey. Customized items have no
// catalog id, so the descriptor itself is their identity.
type CustomDescriptor struct {
	Design         string `json:"design"`
	PlayerName     string `json:"player_name"`
	PlayerNumber   string `json:"player_number"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	NameColor      string `json:"name_color"`
	NumberColor    string `json:"number_color"`
	FrontText      string `json:"front_text"`
	FrontTextType  string `json:"front_text_type"`
}

// Equal is field-by-field equality over every descriptor field.
func (d CustomDescriptor) Equal(other CustomDescriptor) bool {
	return d == other
}

// Validate requires a design, a player name, a primary colour and a player number of one or two digits.
func (d CustomDescriptor) Validate() error {
	if strings.TrimSpace(d.Design) == "" || strings.TrimSpace(d.PlayerName) == "" || strings.TrimSpace(d.PrimaryColor) == "" {
		return ErrInvalidDescriptor
	}
	n := d.PlayerNumber
	if len(n) == 0 || len(n) > 2 {
		return ErrInvalidDescriptor
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return ErrInvalidDescriptor
		}
	}
	return nil
}

// slug is the readable prefix of custom line ids.
func (d CustomDescriptor) slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(d.PlayerName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "custom"
	}
	return s
}
