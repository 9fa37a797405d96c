package service

import "errors"

// Sentinel domain errors. Services return these (possibly wrapped with
// fmt.Errorf("%w: ...")) instead of throwing; the handler layer alone maps
// them to HTTP status codes.
var (
	// ErrNotFound: a referenced product, inventory record, rental, or other
	// entity does not exist.
	ErrNotFound = errors.New("registro nao encontrado")

	// ErrValidation: input passed JSON binding but fails a business rule.
	ErrValidation = errors.New("dados invalidos")

	// ErrInsufficientStock: an outbound movement requested more than the
	// current on-hand quantity.
	ErrInsufficientStock = errors.New("estoque insuficiente")

	// ErrReturnExceedsRented: a rental return exceeds ordered minus already
	// returned units for an item.
	ErrReturnExceedsRented = errors.New("quantidade de devolucao excede a quantidade locada")

	// ErrUnauthorized: authentication failed (bad credentials, expired or
	// revoked token).
	ErrUnauthorized = errors.New("nao autenticado")

	// ErrForbidden: the caller is authenticated but lacks the role,
	// permission, or resource ownership required.
	ErrForbidden = errors.New("acesso negado")

	// ErrConflict: a uniqueness rule was violated (duplicate SKU, email, ...).
	ErrConflict = errors.New("registro duplicado")
)
