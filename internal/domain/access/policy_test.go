package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

const (
	principal = entity.RoleAdminPrincipal
	adminSpa  = entity.RoleAdminSpa
	usuario   = entity.RoleUsuario
)

func TestAuthorize_Tabla(t *testing.T) {
	cases := []struct {
		name    string
		role    entity.Role
		action  access.Action
		isOwner bool
		want    bool
	}{
		{"principal crea spa", principal, access.ActionCreateSpa, false, true},
		{"admin_spa no crea spa", adminSpa, access.ActionCreateSpa, true, false},
		{"usuario no crea spa", usuario, access.ActionCreateSpa, false, false},

		{"principal edita cualquier spa", principal, access.ActionUpdateSpa, false, true},
		{"admin_spa edita su spa", adminSpa, access.ActionUpdateSpa, true, true},
		{"admin_spa no edita spa ajeno", adminSpa, access.ActionUpdateSpa, false, false},
		{"usuario no edita spa aunque sea dueño", usuario, access.ActionUpdateSpa, true, false},

		{"solo principal desactiva spa", adminSpa, access.ActionDeleteSpa, true, false},
		{"principal restaura spa", principal, access.ActionRestoreSpa, false, true},

		{"principal gestiona servicios", principal, access.ActionManageService, false, true},
		{"admin_spa no gestiona servicios", adminSpa, access.ActionManageService, false, false},

		{"admin_spa gestiona materiales", adminSpa, access.ActionManageMaterial, false, true},
		{"usuario no gestiona materiales", usuario, access.ActionManageMaterial, false, false},

		{"admin_spa asocia a su spa", adminSpa, access.ActionAssociateToSpa, true, true},
		{"admin_spa no asocia a spa ajeno", adminSpa, access.ActionAssociateToSpa, false, false},

		{"usuario crea reseña", usuario, access.ActionCreateReview, false, true},
		{"principal no crea reseña", principal, access.ActionCreateReview, false, false},
		{"admin_spa no crea reseña", adminSpa, access.ActionCreateReview, false, false},

		{"usuario modifica su reseña", usuario, access.ActionModifyReview, true, true},
		{"usuario no modifica reseña ajena", usuario, access.ActionModifyReview, false, false},
		{"principal modifica cualquier reseña", principal, access.ActionModifyReview, false, true},
		{"admin_spa no modifica reseñas", adminSpa, access.ActionModifyReview, true, false},

		{"todos ven activos", usuario, access.ActionViewActive, false, true},
		{"admin_spa no ve inactivos", adminSpa, access.ActionViewInactive, true, false},
		{"principal ve reportes", principal, access.ActionViewReports, false, true},
		{"usuario no ve reportes", usuario, access.ActionViewReports, false, false},
		{"solo principal gestiona usuarios", adminSpa, access.ActionManageUsers, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, access.Authorize(c.role, c.action, c.isOwner))
		})
	}
}

func TestAuthorize_RolDesconocidoDenegado(t *testing.T) {
	assert.False(t, access.Authorize(entity.Role("root"), access.ActionViewActive, true))
	assert.False(t, access.Authorize(principal, access.Action(999), true))
}
