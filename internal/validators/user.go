package validators

import (
	"context"
	"net/mail"
	"net/netip"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/mcnijman/go-emailaddress"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldEmail targets the e-mail address of a user.
	FieldEmail = "email"
)

// Length limits of user fields, counted in characters.
const (
	MinNameLength  = 2
	MaxNameLength  = 100
	MaxEmailLength = 255
)

// Messages reported for rejected user fields.
const (
	MsgNameRequired = "Name is required."
	MsgNameTooShort = "Name must be at least 2 characters long."
	MsgNameTooLong  = "Name cannot exceed 100 characters."

	MsgEmailRequired = "Email is required."
	MsgEmailInvalid  = "Invalid email format."
	MsgEmailTooLong  = "Email cannot exceed 255 characters."
)

// UserValidator implements the Validator interface for [models.User].
// Both value and pointer forms are accepted.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks the requested fields of a user (name and email when no
// field is given). It returns nil for a valid user, [ValidationErrors] with
// one message per failing field otherwise, [ErrUnsupportedType] for any
// other type and [ErrUnknownField] for an unknown field name.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		if messages := ValidateUser(user); len(messages) > 0 {
			return ValidationErrors(messages)
		}
		return nil
	}

	var messages ValidationErrors
	for _, f := range fields {
		var msg string
		switch f {
		case FieldName:
			msg = validateName(user.Name)
		case FieldEmail:
			msg = validateEmail(user.Email)
		default:
			return ErrUnknownField
		}

		if msg != "" {
			messages = append(messages, msg)
		}
	}

	if len(messages) == 0 {
		return nil
	}

	return messages
}

// ValidateUser returns every validation message for user, name rules first.
// An empty result means the user is valid.
func ValidateUser(user models.User) []string {
	var messages []string
	if msg := validateName(user.Name); msg != "" {
		messages = append(messages, msg)
	}
	if msg := validateEmail(user.Email); msg != "" {
		messages = append(messages, msg)
	}

	return messages
}

// validateName returns the message of the first failing name rule or "".
func validateName(name string) string {
	switch length := utf8.RuneCountInString(name); {
	case strings.TrimSpace(name) == "":
		return MsgNameRequired
	case length < MinNameLength:
		return MsgNameTooShort
	case length > MaxNameLength:
		return MsgNameTooLong
	}

	return ""
}

// validateEmail returns the message of the first failing email rule or "".
// The format rule runs before the length rule.
func validateEmail(email string) string {
	switch {
	case strings.TrimSpace(email) == "":
		return MsgEmailRequired
	case !isValidEmail(email):
		return MsgEmailInvalid
	case utf8.RuneCountInString(email) > MaxEmailLength:
		return MsgEmailTooLong
	}

	return ""
}

// isValidEmail reports whether email is a bare local-part@domain address.
// The whole input must be the address: surrounding text, whitespace or a
// display name make it invalid. Common addresses are matched by
// go-emailaddress; the rest of the RFC 5322 addr-spec grammar (single-label
// domains, quoted local parts, domain literals) is checked by parseAddrSpec.
func isValidEmail(email string) bool {
	if strings.ContainsAny(email, " \t\r\n<>") {
		return false
	}

	if _, err := emailaddress.Parse(email); err == nil {
		found := emailaddress.Find([]byte(email), false)
		if len(found) == 1 && found[0].String() == email {
			return true
		}
	}

	return parseAddrSpec(email)
}

// parseAddrSpec reports whether email parses as a single addr-spec that
// renders back to email itself.
func parseAddrSpec(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	local, domain := email[:at], email[at+1:]

	if strings.HasPrefix(domain, "[") {
		return isDomainLiteral(domain) && parseAddrSpec(local+"@example.com")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" {
		return false
	}

	return addr.Address == unquoteLocalPart(local)+"@"+domain
}

// isDomainLiteral accepts "[1.2.3.4]" and "[IPv6:::1]".
func isDomainLiteral(domain string) bool {
	if !strings.HasSuffix(domain, "]") {
		return false
	}

	literal := domain[1 : len(domain)-1]
	if v6, ok := strings.CutPrefix(literal, "IPv6:"); ok {
		ip, err := netip.ParseAddr(v6)
		return err == nil && ip.Is6()
	}

	ip, err := netip.ParseAddr(literal)
	return err == nil && ip.Is4()
}

// unquoteLocalPart strips the quotes and quoted-pair backslashes of a
// quoted local part, as net/mail does when it parses one.
func unquoteLocalPart(local string) string {
	if len(local) < 2 || local[0] != '"' || local[len(local)-1] != '"' {
		return local
	}

	var b strings.Builder
	inner := local[1 : len(local)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
