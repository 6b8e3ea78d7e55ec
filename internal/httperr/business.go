package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por um código
// estável (ex.: "time_conflict"). A camada de domínio devolve o código; o
// handler decide o status HTTP.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness verifica se err é um erro de negócio com algum dos códigos.
func IsBusiness(err error, codes ...string) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	for _, code := range codes {
		if be.Code == code {
			return true
		}
	}
	return false
}
