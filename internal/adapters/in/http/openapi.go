package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var (
	documentOnce sync.Once
	document     *openapi3.T
)

// OpenAPIDocument returns the API description served at /openapi.json and
// rendered by the swagger UI. The document is built once and reused.
func OpenAPIDocument() *openapi3.T {
	documentOnce.Do(func() {
		document = buildOpenAPIDocument()
	})
	return document
}

func buildOpenAPIDocument() *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Atelier Order Workflow API",
			Description: "Jewelry manufacturing orders through screening, approval, assignment, and completion.",
			Version:     "1.0.0",
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: "/"},
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/api/v1/orders", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getOrders",
					Summary:     "List the order book, optionally filtered by status label and partner code",
					Tags:        []string{"orders"},
					Parameters: openapi3.Parameters{
						parameterRef(openapi3.NewQueryParameter("status").
							WithDescription("Status display label, e.g. \"pending\" or \"in-process\"").
							WithSchema(openapi3.NewStringSchema())),
						parameterRef(openapi3.NewQueryParameter("partner_code").
							WithSchema(openapi3.NewStringSchema())),
					},
					Responses: listResponses(orderSummarySchema()),
				},
				Post: &openapi3.Operation{
					OperationID: "createOrder",
					Summary:     "Create an order directly in the pending state",
					Tags:        []string{"orders"},
					Parameters:  actorParameters(),
					RequestBody: jsonBody(newOrderSchema()),
					Responses:   creationResponses(),
				},
			}),
			openapi3.WithPath("/api/v1/orders/rejected", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getRejectedOrders",
					Summary:     "Rejected orders with rejecter identity and total count",
					Tags:        []string{"orders"},
					Responses:   listResponses(rejectedOrdersSchema()),
				},
			}),
			openapi3.WithPath("/api/v1/orders/overdue", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getOverdueOrders",
					Summary:     "Orders past their due date that are still in play, most overdue first",
					Tags:        []string{"orders"},
					Responses:   listResponses(overdueOrderSchema()),
				},
			}),
			openapi3.WithPath("/api/v1/orders/{order_no}", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getOrder",
					Summary:     "The full order card",
					Tags:        []string{"orders"},
					Parameters:  orderNoParameter(),
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(200, jsonResponse("Order card", orderCardSchema())),
						openapi3.WithStatus(400, errorResponse("Malformed order number")),
						openapi3.WithStatus(404, errorResponse("No order carries that number")),
					),
				},
			}),
			openapi3.WithPath("/api/v1/orders/{order_no}/approve",
				transitionPath("approveOrder", "Key-user approval of a pending order", jsonBody(notesSchema()))),
			openapi3.WithPath("/api/v1/orders/{order_no}/reject",
				transitionPath("rejectOrder", "Key-user rejection of a pending order, removing it permanently", nil)),
			openapi3.WithPath("/api/v1/orders/{order_no}/verify",
				transitionPath("verifyOrder", "Admin verification of an approved order", jsonBody(notesSchema()))),
			openapi3.WithPath("/api/v1/orders/{order_no}/admin-reject",
				transitionPath("adminRejectOrder", "Admin rejection of an approved order", jsonBody(notesSchema()))),
			openapi3.WithPath("/api/v1/orders/{order_no}/assign",
				transitionPath("assignCraftsman", "Assign the order to the craftsman named as CODE-Business Name", jsonBody(assignSchema()))),
			openapi3.WithPath("/api/v1/orders/{order_no}/response",
				transitionPath("respondToAssignment", "The assigned craftsman accepts or rejects the assignment", jsonBody(respondSchema()))),
			openapi3.WithPath("/api/v1/orders/{order_no}/complete",
				transitionPath("completeOrder", "The assigned craftsman reports the work done", nil)),
			openapi3.WithPath("/api/v1/orders/{order_no}/approve-completion",
				transitionPath("approveCompletion", "Final admin sign-off on a completed order", jsonBody(notesSchema()))),
			openapi3.WithPath("/api/v1/order-requests", &openapi3.PathItem{
				Post: &openapi3.Operation{
					OperationID: "submitOrderRequest",
					Summary:     "Submit an order request pending key-user screening",
					Tags:        []string{"order-requests"},
					Parameters:  actorParameters(),
					RequestBody: jsonBody(newOrderSchema()),
					Responses:   creationResponses(),
				},
			}),
			openapi3.WithPath("/api/v1/order-requests/{order_no}/screen",
				transitionPath("screenOrderRequest", "Key-user screening decision on a submitted request", jsonBody(screenSchema()))),
			openapi3.WithPath("/api/v1/craftsmen", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getCraftsmen",
					Summary:     "The craftsman directory in registration order",
					Tags:        []string{"craftsmen"},
					Responses:   listResponses(craftsmanSchema()),
				},
				Post: &openapi3.Operation{
					OperationID: "createCraftsman",
					Summary:     "Register a craftsman directory entry",
					Tags:        []string{"craftsmen"},
					Parameters:  actorParameters(),
					RequestBody: jsonBody(newCraftsmanSchema()),
					Responses:   creationResponses(),
				},
			}),
		),
	}
}

// transitionPath builds the path item shared by all order transition
// endpoints: POST with actor headers, order number in the path, and the
// TransitionResponse envelope.
func transitionPath(operationID string, summary string, body *openapi3.RequestBodyRef) *openapi3.PathItem {
	parameters := orderNoParameter()
	parameters = append(parameters, actorParameters()...)

	return &openapi3.PathItem{
		Post: &openapi3.Operation{
			OperationID: operationID,
			Summary:     summary,
			Tags:        []string{"orders"},
			Parameters:  parameters,
			RequestBody: body,
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Transition applied", envelopeSchema())),
				openapi3.WithStatus(400, errorResponse("Malformed request")),
				openapi3.WithStatus(403, errorResponse("Caller's role does not permit this transition")),
				openapi3.WithStatus(404, errorResponse("No order carries that number")),
				openapi3.WithStatus(409, errorResponse("The order is not in a state this transition accepts")),
			),
		},
	}
}

func actorParameters() openapi3.Parameters {
	return openapi3.Parameters{
		parameterRef(openapi3.NewHeaderParameter(HeaderActorID).
			WithRequired(true).
			WithSchema(openapi3.NewStringSchema().WithFormat("uuid"))),
		parameterRef(openapi3.NewHeaderParameter(HeaderActorRole).
			WithRequired(true).
			WithDescription("USER, KEY_USER, ADMIN, SUPER_ADMIN, or CRAFTSMAN").
			WithSchema(openapi3.NewStringSchema())),
	}
}

func orderNoParameter() openapi3.Parameters {
	return openapi3.Parameters{
		parameterRef(openapi3.NewPathParameter("order_no").
			WithSchema(openapi3.NewStringSchema())),
	}
}

func parameterRef(parameter *openapi3.Parameter) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: parameter}
}

func jsonBody(schema *openapi3.Schema) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithJSONSchema(schema),
	}
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchema(schema),
	}
}

func errorResponse(description string) *openapi3.ResponseRef {
	return jsonResponse(description, errorSchema())
}

func listResponses(itemSchema *openapi3.Schema) *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(200, jsonResponse("Result rows", openapi3.NewArraySchema().WithItems(itemSchema))),
		openapi3.WithStatus(400, errorResponse("Malformed filter")),
	)
}

func creationResponses() *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(201, jsonResponse("Created", envelopeSchema())),
		openapi3.WithStatus(400, errorResponse("Malformed request")),
		openapi3.WithStatus(403, errorResponse("Caller's role does not permit this operation")),
	)
}

func envelopeSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("ok", openapi3.NewBoolSchema()).
		WithProperty("order_no", openapi3.NewStringSchema()).
		WithProperty("new_status", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema())
}

func errorSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("code", openapi3.NewIntegerSchema()).
		WithProperty("message", openapi3.NewStringSchema())
}

func newOrderSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("product", openapi3.NewStringSchema()).
		WithProperty("design", openapi3.NewStringSchema()).
		WithProperty("purity", openapi3.NewStringSchema()).
		WithProperty("narration", openapi3.NewStringSchema()).
		WithProperty("quantity", openapi3.NewIntegerSchema()).
		WithProperty("due_date", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("partner_code", openapi3.NewStringSchema())
}

func notesSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("notes", openapi3.NewStringSchema())
}

func assignSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("craftsman", openapi3.NewStringSchema()).
		WithProperty("due_date", openapi3.NewStringSchema().WithFormat("date"))
}

func respondSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("action", openapi3.NewStringSchema().WithEnum("accept", "reject"))
}

func screenSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("accept", openapi3.NewBoolSchema()).
		WithProperty("notes", openapi3.NewStringSchema())
}

func orderSummarySchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("order_no", openapi3.NewStringSchema()).
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("partner_code", openapi3.NewStringSchema()).
		WithProperty("due_date", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("craftsman", openapi3.NewStringSchema())
}

func orderCardSchema() *openapi3.Schema {
	return orderSummarySchema().
		WithProperty("product", openapi3.NewStringSchema()).
		WithProperty("design", openapi3.NewStringSchema()).
		WithProperty("purity", openapi3.NewStringSchema()).
		WithProperty("narration", openapi3.NewStringSchema()).
		WithProperty("quantity", openapi3.NewIntegerSchema()).
		WithProperty("order_date", openapi3.NewDateTimeSchema()).
		WithProperty("created_by", openapi3.NewStringSchema().WithFormat("uuid"))
}

func rejectedOrdersSchema() *openapi3.Schema {
	rejecter := openapi3.NewObjectSchema().
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("business_name", openapi3.NewStringSchema())

	row := openapi3.NewObjectSchema().
		WithProperty("order_no", openapi3.NewStringSchema()).
		WithProperty("rejected_by", rejecter)

	return openapi3.NewObjectSchema().
		WithProperty("rejected_orders", openapi3.NewArraySchema().WithItems(row)).
		WithProperty("total_rejected", openapi3.NewIntegerSchema())
}

func overdueOrderSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("order_no", openapi3.NewStringSchema()).
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("due_date", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("craftsman", openapi3.NewStringSchema())
}

func craftsmanSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema().WithFormat("uuid")).
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("business_name", openapi3.NewStringSchema()).
		WithProperty("display_name", openapi3.NewStringSchema())
}

func newCraftsmanSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("business_name", openapi3.NewStringSchema())
}

// apiDoc adapts the document to the swag registry the swagger UI reads.
type apiDoc struct{}

// ReadDoc serializes the API description for the swagger UI.
func (apiDoc) ReadDoc() string {
	data, err := OpenAPIDocument().MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}
