package auction

import "errors"

// Kind classifica erros para o transporte (400/404/409/500)
type Kind int

const (
	KindStorage Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "storage"
}

type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func newErr(k Kind, msg string) error { return &kindError{kind: k, msg: msg} }

var (
	ErrInvalidBidKind = newErr(KindValidation, "exactly one of maxBid or monsterBid is required")
	ErrInvalidAmount  = newErr(KindValidation, "amount must be positive")
	ErrInvalidWindow  = newErr(KindValidation, "startTime must be before endTime")
	ErrInvalidInput   = newErr(KindValidation, "invalid input")
	ErrBidKindChange  = newErr(KindValidation, "bid kind cannot change on revision")
	ErrBidBelowFloor  = newErr(KindValidation, "bid below seller offer")
	ErrSellerBid      = newErr(KindValidation, "seller cannot bid on own auction")

	ErrVehicleNotFound = newErr(KindNotFound, "vehicle not found")
	ErrAuctionNotFound = newErr(KindNotFound, "no open auction for vehicle")
	ErrNoBids          = newErr(KindNotFound, "auction has no bids")
	ErrChargeNotFound  = newErr(KindNotFound, "charge not found")

	ErrAuctionExists      = newErr(KindConflict, "vehicle already has an open auction")
	ErrAuctionClosed      = newErr(KindConflict, "auction is closed for bidding")
	ErrAlreadyClosed      = newErr(KindConflict, "auction already closed")
	ErrVehicleUnavailable = newErr(KindConflict, "vehicle is not active")
	ErrVehicleSold        = newErr(KindConflict, "vehicle already sold")
	ErrInsufficientFunds  = newErr(KindConflict, "insufficient funds")

	// internos ao repositório; não chegam ao transporte
	ErrBidNotFound  = errors.New("bid not found")
	ErrDuplicateBid = errors.New("duplicate bid for user and auction")
)

// KindOf resolve a classe de qualquer erro embrulhado; desconhecido é storage
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindStorage
}
