package advisor

import (
	"fmt"
	"strings"

	"github.com/arush-mehrotra/finance-ai-agent/internal/model"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/market"
)

const analystSystemPrompt = `You are an expert financial analyst and investment advisor with deep knowledge of:
- Fundamental analysis (P/E ratios, earnings, revenue, margins, etc.)
- Market sentiment and news analysis
- Risk assessment and portfolio management
- Technical and quantitative analysis

Your role is to:
1. Provide objective, data-driven analysis
2. Explain complex financial concepts clearly
3. Consider both opportunities and risks
4. Give actionable insights for investors
5. Be honest about uncertainty and limitations

Always base your analysis on the provided data and clearly state when you're making assumptions.`

const newsAnalystSystemPrompt = `You are a financial news analyst. Summarize news articles and extract key insights that would impact investment decisions.`

const advisorSystemPrompt = `You are a financial advisor providing investment recommendations. Be objective and consider both risks and opportunities.`

const newsSummaryPromptFormat = `Analyze the following news articles for %s:

%s

Provide:
1. A brief summary (2-3 sentences)
2. Overall sentiment (positive/negative/neutral)
3. 3-5 key points that investors should know

Format your response as:
SUMMARY: [your summary]
SENTIMENT: [positive/negative/neutral]
KEY POINTS:
- [point 1]
- [point 2]
- [point 3]
`

const recommendationPromptFormat = `Based on the following analysis for %s:

%s

Current Price: %s
P/E Ratio: %s
Market Cap: %s

Provide a recommendation (BUY/HOLD/SELL) with:
1. Your recommendation
2. Confidence level (High/Medium/Low)
3. Brief reasoning (2-3 sentences)
4. Key risk factors

Format as:
RECOMMENDATION: [BUY/HOLD/SELL]
CONFIDENCE: [High/Medium/Low]
REASONING: [your reasoning]
RISKS: [key risks]
`

const maxContextArticles = 5

// buildContext renders the stock snapshot and recent classified news into the
// prompt context shared by the analysis and Q&A calls.
func buildContext(ticker string, info market.StockInfo, articles []model.ClassifiedArticle) string {
	var sb strings.Builder

	name := info.Name
	if name == "" {
		name = "N/A"
	}
	fmt.Fprintf(&sb, "Stock Analysis for %s (%s)\n", ticker, name)

	fmt.Fprintf(&sb, "\nCurrent Price: %s\n", fmtMoney(info.CurrentPrice))
	fmt.Fprintf(&sb, "Market Cap: %s\n", fmtMoney(info.MarketCap))
	fmt.Fprintf(&sb, "Industry: %s\n", fmtText(info.Industry))
	fmt.Fprintf(&sb, "Exchange: %s\n", fmtText(info.Exchange))

	sb.WriteString("\nValuation Metrics:\n")
	fmt.Fprintf(&sb, "- P/E Ratio: %s\n", fmtNum(info.PERatio))
	fmt.Fprintf(&sb, "- Beta: %s\n", fmtNum(info.Beta))
	fmt.Fprintf(&sb, "- Dividend Yield: %s\n", fmtPct(info.DividendYield))

	sb.WriteString("\nProfitability:\n")
	fmt.Fprintf(&sb, "- Profit Margin: %s\n", fmtPct(info.ProfitMargin))
	fmt.Fprintf(&sb, "- Operating Margin: %s\n", fmtPct(info.OperatingMargin))
	fmt.Fprintf(&sb, "- ROE: %s\n", fmtPct(info.ReturnOnEquity))

	sb.WriteString("\nGrowth:\n")
	fmt.Fprintf(&sb, "- Earnings Growth: %s\n", fmtPct(info.EarningsGrowth))
	fmt.Fprintf(&sb, "- Revenue Growth: %s\n", fmtPct(info.RevenueGrowth))

	if len(articles) > 0 {
		sb.WriteString("\nRecent News:\n")
		for i, a := range articles {
			if i >= maxContextArticles {
				break
			}
			fmt.Fprintf(&sb, "\n%d. %s\n", i+1, a.Title)
			fmt.Fprintf(&sb, "   Source: %s | Sentiment: %s\n", fmtText(a.Source), a.Sentiment)
			if a.Description != "" {
				fmt.Fprintf(&sb, "   %s\n", truncate(a.Description, 150))
			}
		}
	}

	return sb.String()
}

// formatNewsForPrompt renders up to ten articles as a numbered list for the
// news summary prompt.
func formatNewsForPrompt(articles []model.ClassifiedArticle) string {
	var sb strings.Builder
	for i, a := range articles {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, a.Title)
		if a.Description != "" {
			fmt.Fprintf(&sb, "   %s\n", a.Description)
		}
		fmt.Fprintf(&sb, "   Source: %s\n\n", fmtText(a.Source))
	}
	return sb.String()
}

// truncate cuts s after max runes, never mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func fmtText(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func fmtMoney(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", v)
}

func fmtNum(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func fmtPct(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v)
}
