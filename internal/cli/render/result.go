package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// keys rendered by dedicated sections rather than the generic listing
var sectionKeys = []string{"multisigState", "inspection", "data", "contract"}

// ResultRenderer prints command results
type ResultRenderer struct {
	out  io.Writer
	json bool
}

func NewResultRenderer(out io.Writer, asJSON bool) *ResultRenderer {
	return &ResultRenderer{out: out, json: asJSON}
}

// Render writes result as indented JSON or as human readable text
func (r *ResultRenderer) Render(result *models.Result) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, resp := range result.Responses {
		r.renderTransaction(resp)
	}

	if state := multisigState(result.Data["multisigState"]); state != nil {
		fmt.Fprintln(r.out)
		fmt.Fprint(r.out, RenderMultisigState(state))
	}
	if data, ok := result.Data["data"]; ok {
		r.renderData(result.Data["contract"], data)
	}
	if inspection, ok := result.Data["inspection"].([]usecase.InspectionResult); ok && len(inspection) > 0 {
		r.renderInspection(inspection)
	}

	rest := lo.OmitByKeys(result.Data, sectionKeys)
	if len(rest) > 0 {
		keys := lo.Keys(rest)
		sort.Strings(keys)
		fmt.Fprintln(r.out)
		for _, k := range keys {
			fmt.Fprintf(r.out, "%s: %s\n", color.New(color.FgCyan).Sprint(k), formatValue(rest[k]))
		}
	}
	return nil
}

func (r *ResultRenderer) renderTransaction(resp models.Response) {
	tx := resp.Tx
	if tx == nil {
		return
	}
	switch tx.Status {
	case models.TransactionStatusAccepted:
		fmt.Fprintln(r.out, FormatSuccess("Transaction accepted"))
	case models.TransactionStatusRejected:
		fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf("❌ Transaction rejected: %s", tx.ErrorMessage))
	default:
		fmt.Fprintln(r.out, FormatWarning("Transaction pending"))
	}
	if tx.Hash != (common.Hash{}) {
		fmt.Fprintf(r.out, "   Hash:    %s\n", tx.Hash.Hex())
	}
	if tx.Address != nil {
		fmt.Fprintf(r.out, "   Address: %s\n", tx.Address.Hex())
	}
	if tx.Receipt != nil && tx.Receipt.BlockNumber != nil {
		fmt.Fprintf(r.out, "   Block:   %s\n", tx.Receipt.BlockNumber)
	}
}

func (r *ResultRenderer) renderData(contract, data any) {
	fmt.Fprintln(r.out)
	if c, ok := contract.(string); ok && c != "" {
		fmt.Fprintf(r.out, "%s %s\n", color.New(color.FgWhite, color.Bold).Sprint("Contract"), c)
	}

	// structs are flattened through their JSON form
	raw, err := json.Marshal(data)
	var fields map[string]any
	if err != nil || json.Unmarshal(raw, &fields) != nil {
		fmt.Fprintf(r.out, "  %s\n", formatValue(data))
		return
	}
	keys := lo.Keys(fields)
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.out, "  %s: %s\n", color.New(color.FgCyan).Sprint(k), formatValue(fields[k]))
	}
}

func (r *ResultRenderer) renderInspection(results []usecase.InspectionResult) {
	fmt.Fprintln(r.out)
	for _, res := range results {
		if res.ResultType == usecase.InspectionSuccess {
			fmt.Fprintln(r.out, color.New(color.FgGreen).Sprintf("  ✓ %s", res.Message))
		} else {
			fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf("  ✗ %s", res.Message))
		}
	}
}

func multisigState(v any) *domain.MultisigState {
	switch s := v.(type) {
	case *domain.MultisigState:
		return s
	case domain.MultisigState:
		return &s
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []any:
		return strings.Join(lo.Map(val, func(item any, _ int) string { return fmt.Sprint(item) }), ", ")
	case []string:
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}
