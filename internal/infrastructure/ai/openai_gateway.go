// Package ai adapts the OpenAI API to the invoice analyzer, supplier advisor
// and report writer ports, and provides a deterministic stand-in for running
// without an API key.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/reconciliation"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

const (
	serviceName     = "openai"
	suggestionLimit = 3
)

type OpenAIGateway struct {
	client *openai.Client
	model  string
}

var (
	_ interfaces.IInvoiceAnalyzer = (*OpenAIGateway)(nil)
	_ interfaces.ISupplierAdvisor = (*OpenAIGateway)(nil)
	_ interfaces.IReportWriter    = (*OpenAIGateway)(nil)
)

func NewOpenAIGateway(apiKey, model string) *OpenAIGateway {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = shared.ChatModelGPT4o
	}
	return &OpenAIGateway{client: &client, model: model}
}

// Analyze sends the document as an image or file part alongside the
// instructions and decodes the structured answer.
func (g *OpenAIGateway) Analyze(ctx context.Context, document []byte, mimeType string, knownInvoiceNumbers []string) (reconciliation.AnalysisResult, error) {
	docPart, err := documentPart(document, mimeType)
	if err != nil {
		return reconciliation.AnalysisResult{}, err
	}
	schema, err := schemaFor[analysisWire]()
	if err != nil {
		return reconciliation.AnalysisResult{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				docPart,
				openai.TextContentPart(invoicePrompt(knownInvoiceNumbers)),
			}),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "invoice_analysis",
					Description: openai.String("Extracted invoice data with duplicate and market price checks"),
					Schema:      schema,
					Strict:      openai.Bool(true),
				},
			},
		},
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logging.LogError("ai", "Analyze", "chat completion", nil, err)
		return reconciliation.AnalysisResult{}, entities.ExternalServiceError(serviceName, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return reconciliation.AnalysisResult{}, entities.ExternalServiceError(serviceName, errors.New("empty response content"))
	}

	result, err := decodeAnalysis(completion.Choices[0].Message.Content)
	if err != nil {
		return reconciliation.AnalysisResult{}, entities.ExternalServiceError(serviceName, err)
	}
	return result, nil
}

func (g *OpenAIGateway) Suggest(ctx context.Context, items []entities.PurchaseRequestItem, suppliers []entities.Supplier) ([]entities.SupplierSuggestion, error) {
	if len(suppliers) == 0 {
		return []entities.SupplierSuggestion{}, nil
	}
	schema, err := schemaFor[suggestionsWire]()
	if err != nil {
		return nil, err
	}
	content, err := g.respond(ctx, suggestionPrompt(items, suppliers, suggestionLimit), &responses.ResponseFormatTextJSONSchemaConfigParam{
		Type:        constant.JSONSchema("json_schema"),
		Name:        "supplier_suggestions",
		Strict:      param.NewOpt(true),
		Schema:      schema,
		Description: param.NewOpt("Suppliers recommended for a purchase request"),
	})
	if err != nil {
		return nil, err
	}
	out, err := decodeSuggestions(content, suppliers, suggestionLimit)
	if err != nil {
		return nil, entities.ExternalServiceError(serviceName, err)
	}
	return out, nil
}

func (g *OpenAIGateway) Summarize(ctx context.Context, requests []*entities.PurchaseRequest, branchName, month string) (string, error) {
	text, err := g.respond(ctx, reportPrompt(requests, branchName, month), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// respond runs a Responses API call; format nil means plain text.
func (g *OpenAIGateway) respond(ctx context.Context, prompt string, format *responses.ResponseFormatTextJSONSchemaConfigParam) (string, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(g.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	}
	if format != nil {
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{OfJSONSchema: format},
		}
	}

	resp, err := g.client.Responses.New(ctx, params)
	if err != nil {
		logging.LogError("ai", "respond", "responses", nil, err)
		return "", entities.ExternalServiceError(serviceName, err)
	}
	content := resp.OutputText()
	if content == "" {
		return "", entities.ExternalServiceError(serviceName, errors.New("empty response content"))
	}
	return content, nil
}

func documentPart(document []byte, mimeType string) (openai.ChatCompletionContentPartUnionParam, error) {
	if len(document) == 0 {
		return openai.ChatCompletionContentPartUnionParam{}, entities.Validationf("invoice document is empty")
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(document))
	if !entities.IsInvoiceDocumentType(mimeType) {
		return openai.ChatCompletionContentPartUnionParam{}, entities.Validationf("unsupported invoice document type %q", mimeType)
	}
	if strings.HasPrefix(mimeType, "image/") {
		return openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}), nil
	}
	return openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
		FileData: param.NewOpt(dataURL),
		Filename: param.NewOpt("invoice.pdf"),
	}), nil
}
