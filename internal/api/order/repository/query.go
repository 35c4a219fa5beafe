package orderRepository

const (
	queryGetOrderByID = `
		SELECT
			id,
			status,
			expected_date,
			courier,
			created_at,
			updated_at
		FROM orders
		WHERE id = :id`
)
