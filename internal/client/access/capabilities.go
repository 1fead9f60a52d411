// Package access is the single authority mapping an identity's role to the
// views and actions it may use. Screens consult For instead of comparing
// role strings at call sites.
package access

import "storehub-client/internal/client/models"

// Capabilities enumerates what a resolved identity may see and do. The
// owner-dashboard capability only gates whether the view is offered at all:
// ownership of the specific store is verified by the service, and a denial
// there renders an explicit denial state.
type Capabilities struct {
	CanViewAdmin          bool
	CanViewOwnerDashboard bool
	CanSubmitRating       bool
	CanManageUsers        bool
	CanManageStores       bool
}

// For returns the capabilities of the given identity. A nil identity is an
// anonymous visitor; an unknown role carries no capabilities. Pure function:
// equal inputs always yield equal outputs.
func For(identity *models.User) Capabilities {
	if identity == nil {
		return Capabilities{}
	}
	switch identity.Role {
	case models.RoleNormalUser:
		return Capabilities{CanSubmitRating: true}
	case models.RoleStoreOwner:
		return Capabilities{CanViewOwnerDashboard: true}
	case models.RoleSystemAdmin:
		return Capabilities{
			CanViewAdmin:          true,
			CanViewOwnerDashboard: true,
			CanManageUsers:        true,
			CanManageStores:       true,
		}
	default:
		return Capabilities{}
	}
}
