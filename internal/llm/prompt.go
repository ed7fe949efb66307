package llm

import "strings"

// maxPromptTextLen caps how much receipt text rides along in a prompt.
// Anything past ~3k chars is OCR noise from the bottom of long receipts.
const maxPromptTextLen = 3000

// BuildItemsSystemPrompt instructs the model to emit individual purchases
// only, in the items schema envelope.
func BuildItemsSystemPrompt() string {
	parts := []string{
		"You are a receipt parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract the individual purchased line items from the receipt text.",
		"A typical receipt has between 3 and 15 items.",
		"Each item needs 'description' (the product name as printed) and 'amount' (the line price).",
		"Skip subtotal, tax, total, change, cashback, loyalty and payment lines entirely.",
		"Skip quantity-only and weight-only rows; the priced row is the item.",
		"Amounts are plain decimals without currency symbols.",
		"Never output null. If no items are readable, return an empty items array.",
	}
	return strings.Join(parts, " ")
}

// BuildSummarySystemPrompt asks for the receipt's own printed arithmetic.
func BuildSummarySystemPrompt() string {
	parts := []string{
		"You are a receipt parser. Return ONLY a JSON object with keys 'subtotal', 'tax', 'total', 'store'.",
		"Read the values the receipt itself prints; do not compute them from line items.",
		"'subtotal', 'tax' and 'total' are decimal strings with two decimals, e.g. \"12.99\".",
		"'store' is the merchant name from the top of the receipt.",
		"If a value is not readable, use \"0.00\" for amounts and \"\" for store.",
	}
	return strings.Join(parts, " ")
}

// BuildClassifySystemPrompt restricts the answer to the closed category set.
func BuildClassifySystemPrompt(categories []string) string {
	parts := []string{
		"You classify a single purchased item into a spending category.",
		"Allowed categories (enum): " + strings.Join(categories, ", ") + ".",
		"Respond with ONLY the category name, nothing else.",
		"If uncertain, respond with 'Other'.",
	}
	return strings.Join(parts, " ")
}

// BuildReceiptUserPrompt packages the normalized receipt text.
func BuildReceiptUserPrompt(text string) string {
	text = strings.TrimSpace(text)
	var b strings.Builder
	b.WriteString("Receipt text:\n")
	if len(text) > maxPromptTextLen {
		b.WriteString(text[:maxPromptTextLen])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}

// BuildClassifyUserPrompt names the item to be categorized.
func BuildClassifyUserPrompt(description string) string {
	return "Item: " + strings.TrimSpace(description)
}
