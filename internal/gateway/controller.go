package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"chat-history-be/internal/dto"
	"chat-history-be/internal/pkg/logger"
	"chat-history-be/internal/pkg/serverutils"
	"chat-history-be/internal/service"
)

// Controller exposes every read and write operation through a single
// endpoint. Requests carry an operation document plus a variables map;
// the top-level field names select the resolvers and every argument is
// taken from variables.
type Controller struct {
	appUserService      service.IAppUserService
	conversationService service.IConversationService
	messageService      service.IMessageService
	elementService      service.IElementService
	logger              logger.ILogger
}

func NewController(
	appUserService service.IAppUserService,
	conversationService service.IConversationService,
	messageService service.IMessageService,
	elementService service.IElementService,
	sysLogger logger.ILogger,
) *Controller {
	return &Controller{
		appUserService:      appUserService,
		conversationService: conversationService,
		messageService:      messageService,
		elementService:      elementService,
		logger:              sysLogger,
	}
}

func (ctl *Controller) RegisterRoutes(router fiber.Router) {
	router.Post("/graphql", ctl.Execute)
	router.Get("/graphql", ctl.Playground)
}

type executeRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type operationError struct {
	Message string `json:"message"`
}

type executeResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []operationError       `json:"errors,omitempty"`
}

// Execute runs every top-level field of the posted document against its
// resolver. Partial failure is reported per field: failed fields render
// as null in data with a matching entry in errors, and any error at all
// turns the response into a 400.
func (ctl *Controller) Execute(c *fiber.Ctx) error {
	var req executeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(executeResponse{
			Errors: []operationError{{Message: "malformed request body"}},
		})
	}

	doc, err := parseDocument(req.Query)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(executeResponse{
			Errors: []operationError{{Message: err.Error()}},
		})
	}

	resp := executeResponse{Data: make(map[string]interface{}, len(doc.Fields))}
	for _, field := range doc.Fields {
		value, opErr := ctl.resolve(c.UserContext(), doc, field, req.Variables)
		if opErr != nil {
			ctl.logger.Warn("gateway", "operation failed", map[string]interface{}{
				"field": field,
				"error": opErr.Error(),
			})
			resp.Data[field] = nil
			resp.Errors = append(resp.Errors, operationError{Message: opErr.Error()})
			continue
		}
		resp.Data[field] = value
	}

	status := fiber.StatusOK
	if len(resp.Errors) > 0 {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(resp)
}

func (ctl *Controller) resolve(ctx context.Context, doc *document, field string, vars map[string]interface{}) (interface{}, error) {
	if doc.Mutation {
		return ctl.resolveMutation(ctx, field, vars)
	}
	return ctl.resolveQuery(ctx, field, vars)
}

func (ctl *Controller) resolveQuery(ctx context.Context, field string, vars map[string]interface{}) (interface{}, error) {
	switch field {
	case "getAppUser":
		username, ok := vars["username"].(string)
		if !ok || username == "" {
			return nil, fmt.Errorf("getAppUser requires a username argument")
		}
		return ctl.appUserService.GetAppUser(ctx, username)

	case "conversations":
		var req dto.ListConversationsRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.conversationService.ListConversations(ctx, &req), nil

	case "conversation":
		var req dto.GetConversationRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.conversationService.GetConversation(ctx, req.Id.Int64())

	default:
		return nil, fmt.Errorf("unknown query field %q", field)
	}
}

func (ctl *Controller) resolveMutation(ctx context.Context, field string, vars map[string]interface{}) (interface{}, error) {
	switch field {
	case "createAppUser":
		var req dto.CreateAppUserRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.appUserService.CreateAppUser(ctx, &req)

	case "updateUser":
		var req dto.UpdateUserRequest
		if err := decodeArguments(mergeInput(vars, "userData"), &req); err != nil {
			return nil, err
		}
		return ctl.appUserService.UpdateUser(ctx, &req)

	case "deleteUser":
		var req dto.DeleteUserRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.appUserService.DeleteUser(ctx, req.Id.Int64())

	case "createConversation":
		var req dto.CreateConversationRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.conversationService.CreateConversation(ctx, &req)

	case "updateConversation":
		var req dto.UpdateConversationRequest
		if err := decodeArguments(mergeInput(vars, "conversationData"), &req); err != nil {
			return nil, err
		}
		return ctl.conversationService.UpdateConversation(ctx, &req)

	case "deleteConversation":
		var req dto.DeleteConversationRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.conversationService.DeleteConversation(ctx, req.Id.Int64())

	case "createMessage":
		var req dto.CreateMessageRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.messageService.CreateMessage(ctx, &req)

	case "updateMessage":
		var req dto.UpdateMessageRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.messageService.UpdateMessage(ctx, &req)

	case "deleteMessage":
		var req dto.DeleteMessageRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.messageService.DeleteMessage(ctx, req.Id)

	case "setHumanFeedback":
		var req dto.SetHumanFeedbackRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.messageService.SetHumanFeedback(ctx, &req)

	case "createElement":
		var req dto.CreateElementRequest
		if err := decodeArguments(vars, &req); err != nil {
			return nil, err
		}
		return ctl.elementService.CreateElement(ctx, &req)

	default:
		return nil, fmt.Errorf("unknown mutation field %q", field)
	}
}

// mergeInput flattens a nested input object (clients may pass arguments
// either flat or wrapped, e.g. {"id": 1, "userData": {...}}).
func mergeInput(vars map[string]interface{}, key string) map[string]interface{} {
	nested, ok := vars[key].(map[string]interface{})
	if !ok {
		return vars
	}
	merged := make(map[string]interface{}, len(vars)+len(nested))
	for k, v := range vars {
		if k != key {
			merged[k] = v
		}
	}
	for k, v := range nested {
		merged[k] = v
	}
	return merged
}

// decodeArguments maps the variables object onto a typed request and
// validates it.
func decodeArguments(vars map[string]interface{}, out interface{}) error {
	if vars == nil {
		vars = map[string]interface{}{}
	}
	raw, err := json.Marshal(vars)
	if err != nil {
		return fmt.Errorf("unreadable variables: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid variables: %w", err)
	}
	return serverutils.ValidateRequest(out)
}

// Playground serves a minimal static page for exercising the endpoint
// from a browser.
func (ctl *Controller) Playground(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(playgroundHTML)
}

const playgroundHTML = `<!DOCTYPE html>
<html>
<head><title>Chat History API</title></head>
<body>
<h1>Chat History API</h1>
<p>POST operation documents to this URL as {"query": "...", "variables": {...}}.</p>
</body>
</html>`
