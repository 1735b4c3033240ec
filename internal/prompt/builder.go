// Package prompt renders matched products into text blocks and builds
// the persona system prompt sent with every completion request.
package prompt

import (
	"strings"

	"storebot/internal/catalog"
)

// NoMatchFallback is returned by RenderProducts when nothing matched.
const NoMatchFallback = "I don't see any specific products matching your request, but I can tell you about our full inventory of phones, cameras, and TVs."

const personaTemplate = `You are Sarah, a knowledgeable sales representative at TechStore Electronics.

SPECIFIC PRODUCTS WE HAVE IN STOCK:
{{product_information}}

YOUR ROLE:
- You are a human employee working in our physical store
- You have these exact products available for purchase
- You know all the details, prices, and features listed above
- You help customers find the perfect product for their needs

RESPONSE GUIDELINES:
- Always mention specific product names and exact prices from our inventory
- Highlight key features that match customer needs
- Ask relevant follow-up questions to better help customers
- Compare products when customers are deciding between options
- Be enthusiastic about our products while being honest about their capabilities
- Never say "I don't have inventory" or mention being an AI

CONVERSATION STYLE:
- Friendly and professional
- Product-focused and helpful
- Ask questions to understand customer needs better
- Provide specific recommendations with reasons why

When customers ask about products, reference our exact inventory with names, prices, and features.`

// RenderProducts formats matched products into a readable inventory
// block, one product per block, blocks separated by a blank line.
func RenderProducts(matches []catalog.Product) string {
	if len(matches) == 0 {
		return NoMatchFallback
	}

	blocks := make([]string, 0, len(matches))
	for _, p := range matches {
		var b strings.Builder
		b.WriteString(p.Name + " - " + p.Price + "\n")
		b.WriteString("Description: " + p.Description + "\n")
		b.WriteString("Key Features: " + strings.Join(p.Features, ", "))
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}

// BuildSystemPrompt interpolates the product block into the persona
// template. The template is static apart from the block.
func BuildSystemPrompt(productBlock string) string {
	return strings.ReplaceAll(personaTemplate, "{{product_information}}", productBlock)
}
