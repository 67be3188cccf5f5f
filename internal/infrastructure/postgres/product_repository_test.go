package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow copia valores fijos en los destinos de Scan, como lo haría pgx.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("número de columnas distinto")
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *decimal.Decimal:
			*d = v.(decimal.Decimal)
		case *decimal.NullDecimal:
			*d = v.(decimal.NullDecimal)
		case *float64:
			*d = v.(float64)
		case *int:
			*d = v.(int)
		case **int32:
			*d, _ = v.(*int32)
		case *bool:
			*d = v.(bool)
		default:
			return errors.New("tipo de destino no soportado")
		}
	}
	return nil
}

type fakeQuerier struct {
	row fakeRow
	sql string
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no soportado")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sql = sql
	return q.row
}

func TestGetByID_Escanea(t *testing.T) {
	discount := int32(25)
	q := &fakeQuerier{row: fakeRow{values: []any{
		"6", "Canapé Scandinave 3 Places", decimal.NewFromInt(3600000),
		decimal.NewNullDecimal(decimal.NewFromInt(4800000)), 4.4, 423, "img",
		"home", &discount, false, "Home Design", false,
	}}}

	p, err := NewProductRepository(q).GetByID(context.Background(), "6")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Contains(t, q.sql, "WHERE id = $1")
	assert.Equal(t, "Canapé Scandinave 3 Places", p.Name)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, "4800000", p.OriginalPrice.String())
	require.NotNil(t, p.Discount)
	assert.Equal(t, 25, *p.Discount)
	assert.Equal(t, "Home Design", p.Vendor.Name)
}

func TestGetByID_SinOpcionales(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{values: []any{
		"3", "Nike Air Jordan 1 Retro High OG", decimal.NewFromInt(760000),
		decimal.NullDecimal{}, 4.9, 1923, "img", "fashion", (*int32)(nil), true, "Sneaker Vault", true,
	}}}

	p, err := NewProductRepository(q).GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Nil(t, p.OriginalPrice)
	assert.Nil(t, p.Discount)
	assert.False(t, p.HasDiscount())
}

func TestGetByID_NoExiste(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

	p, err := NewProductRepository(q).GetByID(context.Background(), "x")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetByID_Error(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: errors.New("conexión perdida")}}

	_, err := NewProductRepository(q).GetByID(context.Background(), "x")
	assert.ErrorContains(t, err, "get product")
}
