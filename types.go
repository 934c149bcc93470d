package rbac

// Identifiable is implemented by every user, role, and permission type used
// with the model. RBACID must be deterministic: the same value always yields
// the same id. Two distinct values with equal ids are treated as the same
// entity, since only ids are ever stored in the relations.
type Identifiable[ID comparable] interface {
	// RBACID returns the canonical id of the entity.
	RBACID() ID
}
