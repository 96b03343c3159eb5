package validation

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CreateExpenseInput {
	return CreateExpenseInput{
		Amount:   15.5,
		Category: "Food",
		Note:     "Lunch",
		Date:     "2026-02-20",
	}
}

func TestValidateCreate_Success(t *testing.T) {
	got, err := ValidateCreate(validInput())
	require.NoError(t, err)

	assert.Equal(t, 15.5, got.Amount)
	assert.Equal(t, "Food", got.Category)
	require.NotNil(t, got.Note)
	assert.Equal(t, "Lunch", *got.Note)
	assert.True(t, got.Date.Equal(time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)))
}

func TestValidateCreate_Normalizes(t *testing.T) {
	in := validInput()
	in.Amount = " 42.10 "
	in.Category = "  Transport "
	in.Note = "   "

	got, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, 42.1, got.Amount)
	assert.Equal(t, "Transport", got.Category)
	assert.Nil(t, got.Note)

	in.Note = nil
	got, err = ValidateCreate(in)
	require.NoError(t, err)
	assert.Nil(t, got.Note)

	in.Note = float64(12)
	got, err = ValidateCreate(in)
	require.NoError(t, err)
	require.NotNil(t, got.Note)
	assert.Equal(t, "12", *got.Note)

	in.Amount = json.Number("7.25")
	got, err = ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, 7.25, got.Amount)
}

func TestValidateCreate_InvalidAmount(t *testing.T) {
	for _, amount := range []any{nil, "", "  ", "abc", float64(0), float64(-5), "-5", "0", true, "NaN", map[string]any{}} {
		in := validInput()
		in.Amount = amount

		_, err := ValidateCreate(in)
		require.Error(t, err, "amount %v", amount)
		assert.Equal(t, MsgAmountInvalid, err.Error())
	}
}

func TestValidateCreate_Category(t *testing.T) {
	in := validInput()
	in.Category = "Bogus"
	_, err := ValidateCreate(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category must be one of: Food, Transport, Bills, Shopping, Other")

	for _, c := range []any{nil, "", "   ", float64(3)} {
		in.Category = c
		_, err = ValidateCreate(in)
		require.Error(t, err)
		assert.Equal(t, MsgCategoryRequired, err.Error())
	}

	// 大小写敏感
	in.Category = "food"
	_, err = ValidateCreate(in)
	require.Error(t, err)
}

func TestValidateCreate_InvalidDate(t *testing.T) {
	for _, d := range []any{nil, "", "2024-13-01", "tomorrow", float64(1700000000)} {
		in := validInput()
		in.Date = d

		_, err := ValidateCreate(in)
		require.Error(t, err)
		assert.Equal(t, MsgDateInvalid, err.Error())
	}
}

func TestValidateCreate_AccumulatesErrors(t *testing.T) {
	_, err := ValidateCreate(CreateExpenseInput{Amount: float64(0), Category: "Bogus", Date: "2026-02-20"})
	require.Error(t, err)
	assert.Equal(t, "amount must be a positive number; category must be one of: Food, Transport, Bills, Shopping, Other", err.Error())

	_, err = ValidateCreate(CreateExpenseInput{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{MsgAmountInvalid, MsgCategoryRequired, MsgDateInvalid}, verr.Messages)
	assert.Equal(t, MsgAmountInvalid+"; "+MsgCategoryRequired+"; "+MsgDateInvalid, err.Error())
}

func TestValidateQueryFilters(t *testing.T) {
	r, err := ValidateQueryFilters("", "")
	require.NoError(t, err)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)

	r, err = ValidateQueryFilters("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, r.From)
	require.NotNil(t, r.To)
	assert.True(t, r.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)))
	// 未扩展到当天结束
	assert.True(t, r.To.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)))

	_, err = ValidateQueryFilters("2024-02-31", "also-bad")
	require.Error(t, err)
	assert.Equal(t, MsgFromInvalid, err.Error())

	_, err = ValidateQueryFilters("2024-02-01", "31-01-2024")
	require.Error(t, err)
	assert.Equal(t, MsgToInvalid, err.Error())
}
