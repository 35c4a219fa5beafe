package orderRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"BluewudSupport/internal/api/order"
	"BluewudSupport/internal/entity"
	contextPkg "BluewudSupport/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderDB struct {
	ID           sql.NullString `db:"id"`
	Status       sql.NullString `db:"status"`
	ExpectedDate sql.NullString `db:"expected_date"`
	Courier      sql.NullString `db:"courier"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *ordersRepository) GetOrderByID(c context.Context, id string) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)
	var row OrderDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetOrderByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByID named query preparation err")
		return entity.Order{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"order_id":   id,
			}).Warn("GetOrderByID no rows found")
			return entity.Order{}, order.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByID execution err")
		return entity.Order{}, err
	}

	return r.makeOrder(row), nil
}

func (r *ordersRepository) makeOrder(row OrderDB) entity.Order {
	return entity.Order{
		ID:           row.ID.String,
		Status:       row.Status.String,
		ExpectedDate: row.ExpectedDate.String,
		Courier:      row.Courier.String,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
