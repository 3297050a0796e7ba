package users

import "context"

// API es el colaborador remoto para las colecciones user-like.
// users, veterinarians y admins son colecciones (y cache keys) separadas:
// cada una tiene su operación de listado.
type API interface {
	List(ctx context.Context) ([]User, error)
	ListVeterinarians(ctx context.Context) ([]Veterinarian, error)
	ListAdmins(ctx context.Context) ([]User, error)

	Create(ctx context.Context, u User, profile *VetProfile) (User, error)
	Update(ctx context.Context, id string, in UpdateInput) (User, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status Status) (User, error)
}

// UpdateInput es un PATCH real: nil = no tocar. El rol es inmutable,
// por eso no aparece acá.
type UpdateInput struct {
	Name    *string     `json:"name"`
	Email   *string     `json:"email"`
	Profile *VetProfile `json:"profile"`
}

// Apply mergea el input sobre un usuario existente.
func (in UpdateInput) Apply(u User) User {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	return u
}
