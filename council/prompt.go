package council

import (
	"fmt"
	"strings"
)

// ElderSystemPrompt is the persona instruction for a single elder's turn.
func ElderSystemPrompt(elder Elder) string {
	return fmt.Sprintf(`You are %s, with the following personality: %s.
Respond to questions in character, maintaining this personality throughout the debate.
Keep responses concise (2-3 sentences max) and engage with other elders' points.`,
		elder.Name, elder.Description)
}

// BuildDebateContext renders the only memory the generator sees: the question,
// the roster, the debate rules and every prior turn in chronological order.
func BuildDebateContext(question string, participants []Elder, transcript []Turn) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A council of %d elders is debating the following question: %q\n\n", len(participants), question)

	b.WriteString("The participating elders are:\n")
	for _, e := range participants {
		fmt.Fprintf(&b, "- %s: %s\n", e.Name, e.Description)
	}

	b.WriteString(`
Rules for the debate:
1. Each elder should speak in character based on their personality
2. Responses should be 2-3 sentences maximum
3. Elders should respond to and build upon previous arguments
4. The debate should work toward finding a consensus answer
5. After sufficient discussion, elders should vote on the best answer

Previous messages in this debate:
`)
	for _, t := range transcript {
		fmt.Fprintf(&b, "%s: %s\n", t.Speaker.Name, t.Text)
	}

	return b.String()
}

// ElderTurnPrompt asks one elder for their next statement given the context.
func ElderTurnPrompt(elder Elder, debateContext string) string {
	return fmt.Sprintf(`%s

As %s, provide your perspective on this question.
Remember to stay in character and keep your response to 2-3 sentences.`,
		debateContext, elder.Name)
}

// VotingPrompt instructs the judge to pick a winner as structured JSON.
func VotingPrompt(question string, transcript []Turn) string {
	var summary strings.Builder
	for _, t := range transcript {
		fmt.Fprintf(&summary, "%s: %s\n", t.Speaker.Name, t.Text)
	}

	return fmt.Sprintf(`Based on the debate about %q, which elder provided the most compelling answer?

Debate summary:
%s
Analyze each elder's argument and determine which one presented the strongest case.
Consider factors like logic, evidence, persuasiveness, and addressing the core question.

Respond with a JSON object in this exact format:
{
  "winner": "Elder Name",
  "votes": {
    "Elder Name": ["Supporting Elder 1", "Supporting Elder 2"]
  },
  "reasoning": "Brief explanation of why this elder won"
}`, question, summary.String())
}

// SummaryPrompt asks for the closing statement in the winner's voice.
func SummaryPrompt(question, winner, reasoning string) string {
	return fmt.Sprintf(`Summarize the Council of Elders' decision on the question: %q

The winning perspective came from %s.
Reasoning: %s

Provide a 2-3 sentence summary of the council's final answer to the question,
written from the perspective of %s.`, question, winner, reasoning, winner)
}
