package auction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Deposit credita a conta do usuário (DP-n)
func (s *Service) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, description string) (LedgerEntry, error) {
	return s.postOne(ctx, "deposit", userID, EntryDeposit, amount, description)
}

// Withdraw debita a conta (WD-n); saldo nunca fica negativo por saque
func (s *Service) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, description string) (LedgerEntry, error) {
	return s.postOne(ctx, "withdraw", userID, EntryWithdrawal, amount, description)
}

func (s *Service) postOne(ctx context.Context, op string, userID int64, t EntryType, amount decimal.Decimal, description string) (LedgerEntry, error) {
	if userID <= 0 {
		return LedgerEntry{}, s.fail(op, ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return LedgerEntry{}, s.fail(op, ErrInvalidAmount)
	}
	now := s.now().UTC()
	var e LedgerEntry
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		e, err = s.post(ctx, tx, userID, t, amount, description, now)
		return err
	})
	if err != nil {
		return LedgerEntry{}, s.fail(op, fmt.Errorf("%s: %w", op, err))
	}
	s.posted([]EntryType{t})
	s.log.Info("ledger entry posted",
		zap.Int64("user_id", userID),
		zap.String("reference_no", e.ReferenceNo),
		zap.String("amount", e.Amount.String()),
		zap.String("balance", e.Balance.String()),
	)
	return e, nil
}

// Statement saldo atual e lançamentos em ordem de criação; só leitura, sem lock de conta
func (s *Service) Statement(ctx context.Context, userID int64) (Statement, error) {
	const op = "statement"
	if userID <= 0 {
		return Statement{}, s.fail(op, ErrInvalidInput)
	}
	st := Statement{UserID: userID}
	err := s.store.InTx(ctx, func(tx Tx) error {
		bal, err := tx.AccountBalance(ctx, userID)
		if err != nil {
			return err
		}
		st.Balance = bal
		st.Entries, err = tx.ListLedgerEntries(ctx, userID)
		return err
	})
	if err != nil {
		return Statement{}, s.fail(op, fmt.Errorf("statement: %w", err))
	}
	return st, nil
}

// settle lança compra (débito) do vencedor, venda (crédito) do vendedor e o pedido de cobrança
// Roda dentro da transação de fechamento
func (s *Service) settle(ctx context.Context, tx Tx, a Auction, w Bid, now time.Time) (Charge, []EntryType, error) {
	// contas travadas sempre em ordem crescente de user_id
	ids := []int64{w.UserID, a.SellerID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if _, err := tx.LockAccount(ctx, id); err != nil {
			return Charge{}, nil, err
		}
	}

	desc := fmt.Sprintf("auction %d vehicle %d", a.ID, a.VehicleID)
	purchase, err := s.post(ctx, tx, w.UserID, EntryPurchase, w.YourOffer, desc, now)
	if err != nil {
		return Charge{}, nil, err
	}
	if _, err := s.post(ctx, tx, a.SellerID, EntrySale, w.YourOffer, desc, now); err != nil {
		return Charge{}, nil, err
	}

	c := Charge{
		ID:          s.newID(),
		AuctionID:   a.ID,
		VehicleID:   a.VehicleID,
		BidID:       w.ID,
		UserID:      w.UserID,
		SellerID:    a.SellerID,
		Amount:      w.YourOffer,
		ReferenceNo: purchase.ReferenceNo,
		Status:      ChargeRequested,
		CreatedAt:   now,
	}
	if err := tx.InsertCharge(ctx, c); err != nil {
		return Charge{}, nil, err
	}
	return c, []EntryType{EntryPurchase, EntrySale}, nil
}

// post saldo novo = saldo anterior ± amount, com referência do contador do tipo
func (s *Service) post(ctx context.Context, tx Tx, userID int64, t EntryType, amount decimal.Decimal, description string, now time.Time) (LedgerEntry, error) {
	bal, err := tx.LockAccount(ctx, userID)
	if err != nil {
		return LedgerEntry{}, err
	}
	dir := t.Direction()
	next := bal.Add(amount)
	if dir == Debit {
		next = bal.Sub(amount)
	}
	if t == EntryWithdrawal && next.IsNegative() {
		return LedgerEntry{}, ErrInsufficientFunds
	}

	n, err := tx.NextReference(ctx, t)
	if err != nil {
		return LedgerEntry{}, err
	}
	if err := tx.SetAccountBalance(ctx, userID, next); err != nil {
		return LedgerEntry{}, err
	}
	e := LedgerEntry{
		UserID:      userID,
		Type:        t,
		ReferenceNo: fmt.Sprintf("%s-%d", t.Prefix(), n),
		Direction:   dir,
		Amount:      amount,
		Balance:     next,
		Description: description,
		CreatedAt:   now,
	}
	if err := tx.InsertLedgerEntry(ctx, &e); err != nil {
		return LedgerEntry{}, err
	}
	return e, nil
}

// ReconcileCharge aplica o resultado do gateway; idempotente por status
// captured lança o pagamento (PAY-n) a crédito do comprador
func (s *Service) ReconcileCharge(ctx context.Context, chargeID string, out ChargeOutcome) (Charge, error) {
	const op = "reconcile"
	if chargeID == "" {
		return Charge{}, s.fail(op, ErrInvalidInput)
	}
	now := s.now().UTC()
	var (
		c       Charge
		changed bool
		posted  []EntryType
	)
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		if c, err = tx.GetCharge(ctx, chargeID, true); err != nil {
			return err
		}
		if c.Status != ChargeRequested {
			changed = false
			return nil
		}
		if out.Captured {
			c.Status = ChargeCaptured
			if _, err := s.post(ctx, tx, c.UserID, EntryPayment, c.Amount, "payment "+c.ReferenceNo, now); err != nil {
				return err
			}
			posted = []EntryType{EntryPayment}
		} else {
			c.Status = ChargeFailed
			c.Reason = out.Reason
		}
		c.ProviderRef = out.ProviderRef
		c.SettledAt = &now
		changed = true
		return tx.UpdateCharge(ctx, c)
	})
	if err != nil {
		return Charge{}, s.fail(op, fmt.Errorf("reconcile charge: %w", err))
	}
	if !changed {
		s.log.Debug("charge already reconciled", zap.String("charge_id", c.ID), zap.String("status", string(c.Status)))
		return c, nil
	}

	s.posted(posted)
	if s.hooks.OnReconcile != nil {
		s.hooks.OnReconcile(c.Status)
	}
	s.log.Info("charge reconciled",
		zap.String("charge_id", c.ID),
		zap.String("status", string(c.Status)),
		zap.String("provider_ref", c.ProviderRef),
	)
	return c, nil
}

// RepublishPendingCharges reemite auction_closed para cobranças ainda requested há mais de olderThan
func (s *Service) RepublishPendingCharges(ctx context.Context, olderThan time.Duration) (int, error) {
	const op = "republish"
	cutoff := s.now().UTC().Add(-olderThan)
	var pending []Charge
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		pending, err = tx.ListCharges(ctx, ChargeRequested, cutoff)
		return err
	})
	if err != nil {
		return 0, s.fail(op, fmt.Errorf("republish pending charges: %w", err))
	}

	n := 0
	for _, c := range pending {
		if err := s.pub.PublishAuctionClosed(ctx, closedEvent(s.newID(), c, c.CreatedAt)); err != nil {
			s.log.Warn("republish auction_closed failed", zap.String("charge_id", c.ID), zap.Error(err))
			continue
		}
		n++
	}
	if n > 0 {
		s.log.Info("pending charges republished", zap.Int("count", n))
	}
	return n, nil
}
