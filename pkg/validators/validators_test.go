package validators

import (
	"errors"
	"testing"

	"marketofmanycards/market-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEmailValidator(t *testing.T) {
	tests := []struct {
		email string
		want  error
	}{
		{"s@x.com", nil},
		{"first.last@mail.example.org", nil},
		{"", ErrEmailEmpty},
		{"not-an-email", ErrEmailInvalid},
		{"a@b", ErrEmailInvalid},
		{"a b@x.com", ErrEmailInvalid},
		{"a@@x.com", ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := EmailValidator(tt.email)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserValidator_MissingFields(t *testing.T) {
	err := UserValidator(&UserInput{})
	require.ErrorIs(t, err, apperr.ErrValidation)

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"full_name", "email", "contact"}, verr.Missing)
	assert.Empty(t, verr.Invalid)
}

func TestUserValidator_NicknameAlias(t *testing.T) {
	in := &UserInput{Nickname: " Santiago ", Email: "s@x.com", Contact: "123"}

	require.NoError(t, UserValidator(in))
	assert.Equal(t, "Santiago", in.Name())

	in.FullName = "Santiago Perez"
	assert.Equal(t, "Santiago Perez", in.Name())
}

func TestUserValidator_InvalidEmail(t *testing.T) {
	err := UserValidator(&UserInput{FullName: "S", Email: "not-an-email", Contact: "123"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, verr.Missing)
	assert.Contains(t, verr.Invalid, "email")
}

func TestSaleValidator(t *testing.T) {
	tests := []struct {
		name    string
		in      SaleInput
		missing []string
		invalid []string
	}{
		{"ok", SaleInput{Price: ptr(10.0), Description: "card", Quantity: ptr(1)}, nil, nil},
		{"empty", SaleInput{}, []string{"price", "description", "quantity"}, nil},
		{"zero price", SaleInput{Price: ptr(0.0), Description: "card", Quantity: ptr(1)}, nil, []string{"price"}},
		{"negative quantity", SaleInput{Price: ptr(1.5), Description: "card", Quantity: ptr(-2)}, nil, []string{"quantity"}},
		{"blank description", SaleInput{Price: ptr(1.5), Description: "   ", Quantity: ptr(1)}, []string{"description"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaleValidator(&tt.in)
			if tt.missing == nil && tt.invalid == nil {
				assert.NoError(t, err)
				return
			}

			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.missing, verr.Missing)
			for _, f := range tt.invalid {
				assert.Contains(t, verr.Invalid, f)
			}
		})
	}
}

func TestAuctionValidator(t *testing.T) {
	ok := AuctionInput{Title: "Black Lotus", Description: "mint", StartingPrice: ptr(100.0), Duration: ptr(24)}
	assert.NoError(t, AuctionValidator(&ok))

	err := AuctionValidator(&AuctionInput{})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"title", "description", "startingPrice", "duration"}, verr.Missing)

	bad := ok
	bad.Duration = ptr(0)
	bad.StartingPrice = ptr(-1.0)
	require.ErrorAs(t, AuctionValidator(&bad), &verr)
	assert.Contains(t, verr.Invalid, "duration")
	assert.Contains(t, verr.Invalid, "startingPrice")
}

func TestStatusValidator(t *testing.T) {
	assert.NoError(t, StatusValidator(&StatusInput{Status: "completed"}))
	assert.ErrorIs(t, StatusValidator(&StatusInput{Status: " "}), apperr.ErrValidation)
}

func TestCardValidators(t *testing.T) {
	assert.NoError(t, CardValidator(&CardInput{Name: "Shock", CMC: 1}))
	assert.ErrorIs(t, CardValidator(&CardInput{CMC: 1}), apperr.ErrValidation)
	assert.ErrorIs(t, CardValidator(&CardInput{Name: "Shock", CMC: -1}), apperr.ErrValidation)

	assert.NoError(t, CardPatchValidator(&CardPatch{}))
	assert.NoError(t, CardPatchValidator(&CardPatch{Type: ptr("Instant")}))
	assert.ErrorIs(t, CardPatchValidator(&CardPatch{Name: ptr("")}), apperr.ErrValidation)
	assert.ErrorIs(t, CardPatchValidator(&CardPatch{CMC: ptr(-3.0)}), apperr.ErrValidation)
}
