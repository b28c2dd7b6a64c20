package journal

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Account is a capital account trades are recorded against.
// Accounts are immutable once created: there is no edit or delete path.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"required"`
	Broker         string          `json:"broker" validate:"required"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Currency       string          `json:"currency" validate:"required,len=3,alpha"`
}

// NewAccount validates the inputs and returns a new Account with a fresh id.
func NewAccount(name, broker string, initialBalance decimal.Decimal, currency string) (Account, error) {
	a := Account{
		ID:             uuid.NewString(),
		Name:           name,
		Broker:         broker,
		InitialBalance: initialBalance,
		Currency:       currency,
	}
	if err := validate.Struct(a); err != nil {
		return Account{}, fmt.Errorf("invalid account: %w", err)
	}
	return a, nil
}

// Balance returns the initial balance bound to the account currency.
func (a Account) Balance() Money { return M(a.InitialBalance, a.Currency) }
