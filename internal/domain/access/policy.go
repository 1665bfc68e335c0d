// Package access implementa la política de control de acceso: (rol, acción) -> permitir/denegar.
//
// Es una función pura sobre una tabla. Las reglas "solo dueño" reciben el resultado de la
// comprobación de propiedad (spa.admin_spa_id == usuario, reseña.usuario_id == usuario)
// calculado por el caso de uso.
package access

import "github.com/jhoicas/belleza-api/internal/domain/entity"

// Action acción protegida.
type Action int

const (
	ActionCreateSpa Action = iota + 1
	ActionUpdateSpa
	ActionDeleteSpa
	ActionRestoreSpa
	ActionManageService
	ActionManageMaterial
	ActionAssociateToSpa
	ActionCreateReview
	ActionModifyReview
	ActionViewActive
	ActionViewInactive
	ActionViewReports
	ActionManageUsers
)

var actionNames = map[Action]string{
	ActionCreateSpa:      "crear spa",
	ActionUpdateSpa:      "editar spa",
	ActionDeleteSpa:      "desactivar spa",
	ActionRestoreSpa:     "restaurar spa",
	ActionManageService:  "gestionar servicios",
	ActionManageMaterial: "gestionar materiales",
	ActionAssociateToSpa: "asociar al spa",
	ActionCreateReview:   "crear reseña",
	ActionModifyReview:   "modificar reseña",
	ActionViewActive:     "ver recursos activos",
	ActionViewInactive:   "ver recursos inactivos",
	ActionViewReports:    "ver reportes",
	ActionManageUsers:    "gestionar usuarios",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "acción desconocida"
}

type rule uint8

const (
	deny rule = iota
	allow
	ownerOnly
)

var table = map[Action]map[entity.Role]rule{
	ActionCreateSpa:      {entity.RoleAdminPrincipal: allow},
	ActionUpdateSpa:      {entity.RoleAdminPrincipal: allow, entity.RoleAdminSpa: ownerOnly},
	ActionDeleteSpa:      {entity.RoleAdminPrincipal: allow},
	ActionRestoreSpa:     {entity.RoleAdminPrincipal: allow},
	ActionManageService:  {entity.RoleAdminPrincipal: allow},
	ActionManageMaterial: {entity.RoleAdminPrincipal: allow, entity.RoleAdminSpa: allow},
	ActionAssociateToSpa: {entity.RoleAdminPrincipal: allow, entity.RoleAdminSpa: ownerOnly},
	ActionCreateReview:   {entity.RoleUsuario: allow},
	ActionModifyReview:   {entity.RoleAdminPrincipal: allow, entity.RoleUsuario: ownerOnly},
	ActionViewActive: {
		entity.RoleAdminPrincipal: allow,
		entity.RoleAdminSpa:       allow,
		entity.RoleUsuario:        allow,
	},
	ActionViewInactive: {entity.RoleAdminPrincipal: allow},
	ActionViewReports:  {entity.RoleAdminPrincipal: allow},
	ActionManageUsers:  {entity.RoleAdminPrincipal: allow},
}

// Authorize decide si el rol puede ejecutar la acción. isOwner solo se consulta en reglas "solo dueño".
// Roles o acciones desconocidos se deniegan.
func Authorize(role entity.Role, action Action, isOwner bool) bool {
	switch table[action][role] {
	case allow:
		return true
	case ownerOnly:
		return isOwner
	default:
		return false
	}
}
