package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(db DBPool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts the invoice with its items and the initial status log
// entry. Purchases never touch stock; receiving is only a paper state.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.PurchaseInvoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_invoices (purchase_invoice_id, supplier_id, invoice_number, date,
			payment_due_date, payment_date, total_amount, status, payment_status, cancellation_reason, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`, purchase.PurchaseInvoiceID, purchase.SupplierID, purchase.InvoiceNumber, purchase.Date,
		purchase.PaymentDueDate, purchase.PaymentDate, purchase.TotalAmount, purchase.Status,
		purchase.PaymentStatus, purchase.CancellationReason, purchase.Notes,
		purchase.CreatedAt, purchase.CreatedBy, purchase.LastUpdatedAt, purchase.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, purchase.InvoiceNumber)
		}
		return fmt.Errorf("failed to save purchase invoice: %w", err)
	}

	for _, item := range purchase.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO purchase_items (purchase_item_id, purchase_invoice_id, product_id, unit_size_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, item.PurchaseItemID, item.PurchaseInvoiceID, item.ProductID, item.UnitSizeID,
			item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return fmt.Errorf("failed to save purchase item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdatePurchaseStatus applies a status transition and appends its log entry
// in one transaction so the history can never miss a change.
func (r *PgxPurchaseRepository) UpdatePurchaseStatus(ctx context.Context, purchase domain.PurchaseInvoice, log domain.PurchaseStatusLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE purchase_invoices
		SET status = $2, payment_status = $3, payment_date = $4, cancellation_reason = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE purchase_invoice_id = $1;
	`, purchase.PurchaseInvoiceID, purchase.Status, purchase.PaymentStatus, purchase.PaymentDate,
		purchase.CancellationReason, purchase.LastUpdatedAt, purchase.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update purchase status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_status_logs (purchase_status_log_id, purchase_invoice_id,
			old_status, new_status, old_payment_status, new_payment_status, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, log.PurchaseStatusLogID, log.PurchaseInvoiceID,
		log.OldStatus, log.NewStatus, log.OldPaymentStatus, log.NewPaymentStatus,
		log.Reason, log.CreatedAt, log.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to save purchase status log: %w", err)
	}

	return r.Commit(ctx, tx)
}

const purchaseColumns = `p.purchase_invoice_id, p.supplier_id, s.name, p.invoice_number, p.date,
	p.payment_due_date, p.payment_date, p.total_amount, p.status, p.payment_status,
	p.cancellation_reason, p.notes, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by`

func scanPurchase(row pgx.Row) (*domain.PurchaseInvoice, error) {
	var p domain.PurchaseInvoice
	err := row.Scan(
		&p.PurchaseInvoiceID, &p.SupplierID, &p.SupplierName, &p.InvoiceNumber, &p.Date,
		&p.PaymentDueDate, &p.PaymentDate, &p.TotalAmount, &p.Status, &p.PaymentStatus,
		&p.CancellationReason, &p.Notes, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseInvoiceID string) (*domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchase_invoices p
		JOIN suppliers s ON s.supplier_id = p.supplier_id
		WHERE p.purchase_invoice_id = $1;
	`
	purchase, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseInvoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseInvoiceID, err)
	}

	items, err := r.findPurchaseItems(ctx, purchaseInvoiceID)
	if err != nil {
		return nil, err
	}
	purchase.Items = items
	return purchase, nil
}

func (r *PgxPurchaseRepository) FindPurchaseByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchase_invoices p
		JOIN suppliers s ON s.supplier_id = p.supplier_id
		WHERE p.invoice_number = $1;
	`
	purchase, err := scanPurchase(r.Pool.QueryRow(ctx, query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by invoice number: %w", err)
	}
	return purchase, nil
}

func (r *PgxPurchaseRepository) findPurchaseItems(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseItem, error) {
	query := `
		SELECT i.purchase_item_id, i.purchase_invoice_id, i.product_id, p.name, i.unit_size_id,
			i.quantity, i.unit_price, i.subtotal
		FROM purchase_items i
		JOIN products p ON p.product_id = i.product_id
		WHERE i.purchase_invoice_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items: %w", err)
	}
	defer rows.Close()

	items := []domain.PurchaseItem{}
	for rows.Next() {
		var item domain.PurchaseItem
		err := rows.Scan(&item.PurchaseItemID, &item.PurchaseInvoiceID, &item.ProductID, &item.ProductName,
			&item.UnitSizeID, &item.Quantity, &item.UnitPrice, &item.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase item rows: %w", rows.Err())
	}
	return items, nil
}

func (r *PgxPurchaseRepository) FindPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchase_invoices p
		JOIN suppliers s ON s.supplier_id = p.supplier_id
		ORDER BY p.date DESC, p.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, normalizeLimit(limit, 50), normalizeOffset(offset))
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.PurchaseInvoice{}
	for rows.Next() {
		var p domain.PurchaseInvoice
		err := rows.Scan(
			&p.PurchaseInvoiceID, &p.SupplierID, &p.SupplierName, &p.InvoiceNumber, &p.Date,
			&p.PaymentDueDate, &p.PaymentDate, &p.TotalAmount, &p.Status, &p.PaymentStatus,
			&p.CancellationReason, &p.Notes, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}
	return purchases, nil
}

func (r *PgxPurchaseRepository) FindPurchaseStatusLogs(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseStatusLog, error) {
	query := `
		SELECT l.purchase_status_log_id, l.purchase_invoice_id,
			l.old_status, l.new_status, l.old_payment_status, l.new_payment_status,
			l.reason, l.created_at, l.created_by, COALESCE(u.full_name, '')
		FROM purchase_status_logs l
		LEFT JOIN users u ON u.user_id = l.created_by
		WHERE l.purchase_invoice_id = $1
		ORDER BY l.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase status logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.PurchaseStatusLog{}
	for rows.Next() {
		var log domain.PurchaseStatusLog
		err := rows.Scan(&log.PurchaseStatusLogID, &log.PurchaseInvoiceID,
			&log.OldStatus, &log.NewStatus, &log.OldPaymentStatus, &log.NewPaymentStatus,
			&log.Reason, &log.CreatedAt, &log.CreatedBy, &log.CreatedByName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase status log row: %w", err)
		}
		logs = append(logs, log)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase status log rows: %w", rows.Err())
	}
	return logs, nil
}
