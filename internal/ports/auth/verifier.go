package auth

import "context"

// AuthVerifier valida un bearer token contra el proveedor de identidad
// configurado y devuelve los Claims del usuario autenticado.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
