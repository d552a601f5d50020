package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	transactionIDRegex = `^[A-Za-z0-9_\-]+$`
)

const (
	TransactionIDTag = "txid"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	TransactionIDTag: ValidateTransactionID,
}

func ValidateTransactionID(fl validator.FieldLevel) bool {
	txid := fl.Field().String()
	return regexp.MustCompile(transactionIDRegex).MatchString(txid)
}
