package authenticating

import (
	"errors"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrInvalidRole  = errors.New("papel inválido")
	ErrMissingKey   = errors.New("AUTH_SECRET não configurado")
)
