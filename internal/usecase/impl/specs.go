package impl

import (
	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"
)

// List parameter whitelists per resource. Column names are storage columns.
var (
	identitySpec = query.Spec{
		Filters: map[string]query.Filter{
			"role":      {Column: "role", Allowed: []string{string(entity.RoleAdmin), string(entity.RoleMR), string(entity.RoleManager)}},
			"isActive":  {Column: "is_active", Kind: query.KindBool},
			"territory": {Column: "territory"},
			"region":    {Column: "region"},
			"city":      {Column: "city"},
		},
		SearchFields: []string{"name", "email", "employee_id", "phone"},
		DateColumn:   "created_at",
		SortColumns: map[string]string{
			"name":       "name",
			"employeeId": "employee_id",
			"createdAt":  "created_at",
		},
		DefaultSort: "created_at DESC",
	}

	doctorSpec = query.Spec{
		Filters: map[string]query.Filter{
			"specialization": {Column: "specialization"},
			"city":           {Column: "city"},
			"territory":      {Column: "territory"},
			"category":       {Column: "category", Allowed: []string{"A", "B", "C"}},
			"isActive":       {Column: "is_active", Kind: query.KindBool},
		},
		SearchFields: []string{"name", "specialization", "hospital", "city"},
		DateColumn:   "created_at",
		SortColumns: map[string]string{
			"name":      "name",
			"city":      "city",
			"createdAt": "created_at",
		},
		DefaultSort: "name ASC",
	}

	productSpec = query.Spec{
		Filters: map[string]query.Filter{
			"category":       {Column: "category"},
			"manufacturer":   {Column: "manufacturer"},
			"isActive":       {Column: "is_active", Kind: query.KindBool},
			"isDiscontinued": {Column: "is_discontinued", Kind: query.KindBool},
		},
		SearchFields: []string{"name", "product_code", "composition", "manufacturer"},
		SortColumns: map[string]string{
			"name":        "name",
			"productCode": "product_code",
			"unitPrice":   "unit_price",
			"createdAt":   "created_at",
		},
		DefaultSort: "name ASC",
	}

	visitSpec = query.Spec{
		Filters: map[string]query.Filter{
			"status": {Column: "status", Allowed: []string{
				string(entity.VisitStatusDraft), string(entity.VisitStatusSubmitted),
				string(entity.VisitStatusApproved), string(entity.VisitStatusRejected),
			}},
			"doctor": {Column: "doctor_id", Kind: query.KindUUID},
		},
		SearchFields: []string{"visit_id", "purpose", "notes", "location"},
		DateColumn:   "visit_date",
		SortColumns: map[string]string{
			"visitDate": "visit_date",
			"visitId":   "visit_id",
			"createdAt": "created_at",
		},
		DefaultSort: "visit_date DESC",
	}

	orderSpec = query.Spec{
		Filters: map[string]query.Filter{
			"status": {Column: "status", Allowed: []string{
				string(entity.OrderStatusPending), string(entity.OrderStatusConfirmed),
				string(entity.OrderStatusProcessing), string(entity.OrderStatusShipped),
				string(entity.OrderStatusDelivered), string(entity.OrderStatusCancelled),
				string(entity.OrderStatusReturned),
			}},
			"doctor":        {Column: "doctor_id", Kind: query.KindUUID},
			"paymentMethod": {Column: "payment_method"},
		},
		SearchFields: []string{"order_number", "notes", "shipping_address"},
		DateColumn:   "order_date",
		SortColumns: map[string]string{
			"orderDate":   "order_date",
			"orderNumber": "order_number",
			"grandTotal":  "grand_total",
			"createdAt":   "created_at",
		},
		DefaultSort: "order_date DESC",
	}

	targetSpec = query.Spec{
		Filters: map[string]query.Filter{
			"month": {Column: "month", Kind: query.KindInt},
			"year":  {Column: "year", Kind: query.KindInt},
		},
		SearchFields: []string{"notes"},
		SortColumns: map[string]string{
			"year":        "year",
			"month":       "month",
			"salesTarget": "sales_target",
		},
		DefaultSort: "year DESC, month DESC",
	}

	performanceSpec = query.Spec{
		Filters: map[string]query.Filter{
			"month": {Column: "month", Kind: query.KindInt},
			"year":  {Column: "year", Kind: query.KindInt},
		},
		SearchFields: []string{"remarks"},
		SortColumns: map[string]string{
			"year":               "year",
			"month":              "month",
			"salesValue":         "sales_value",
			"achievementPercent": "achievement_percent",
		},
		DefaultSort: "year DESC, month DESC",
	}

	activitySpec = query.Spec{
		Filters: map[string]query.Filter{
			"product": {Column: "product_id", Kind: query.KindUUID},
			"doctor":  {Column: "doctor_id", Kind: query.KindUUID},
			"action": {Column: "action", Allowed: []string{
				string(entity.ActivityDetailing), string(entity.ActivitySample),
				string(entity.ActivityPrescription), string(entity.ActivityFeedback),
			}},
		},
		SearchFields: []string{"notes"},
		DateColumn:   "occurred_at",
		SortColumns: map[string]string{
			"occurredAt": "occurred_at",
			"quantity":   "quantity",
		},
		DefaultSort: "occurred_at DESC",
	}

	mrRequestSpec = query.Spec{
		Filters: map[string]query.Filter{
			"status": {Column: "status", Allowed: []string{
				string(entity.MRRequestPending), string(entity.MRRequestApproved), string(entity.MRRequestRejected),
			}},
			"city":      {Column: "city"},
			"territory": {Column: "territory"},
			"region":    {Column: "region"},
		},
		SearchFields: []string{"name", "email", "phone", "city"},
		DateColumn:   "created_at",
		SortColumns: map[string]string{
			"name":      "name",
			"createdAt": "created_at",
		},
		DefaultSort: "created_at DESC",
	}
)
