package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos no token do dashboard
const (
	RoleViewer = "viewer"
	RoleAdmin  = "admin"
)

// Claims identifica quem acessa o dashboard. Subject carrega o e-mail ou id do usuário.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AnonymousViewer é usado quando a autenticação está desabilitada
func AnonymousViewer() *Claims {
	return &Claims{
		Role: RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "anonymous",
		},
	}
}
