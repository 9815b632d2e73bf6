package service

// owned is implemented by every record or projection that carries an owner.
type owned interface {
	Owner() string
}

// AuthorizeOwner fails with ErrBarcodeNotFound when rec is nil and with
// ErrNotOwner when rec belongs to someone other than actorID.
func AuthorizeOwner[T any, P interface {
	*T
	owned
}](rec P, actorID string) error {
	if rec == nil {
		return ErrBarcodeNotFound
	}
	if rec.Owner() != actorID {
		return ErrNotOwner
	}
	return nil
}
