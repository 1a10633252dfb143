package classify

import "fmt"

const classificationPromptTemplate = `Classify the following Q&A pair into the appropriate Stack, Category, and Subcategory based on the provided hierarchy and definitions.

Q&A Pair:
Question: %s
Answer: %s

Hierarchy and Definitions:
%s

Examples:
1. Question: "What are your helpdesk support hours?"
Answer: "The online Customer Support Portal and Helpdesk is available 24 hours a day..."
Classification: Stack: "General Organization and Support", Category: "Support", Subcategory: "Day-to-Day Support"

2. Question: "What is your risk approach?"
Answer: "Every project comes with risks and a mitigation register..."
Classification: Stack: "General Organization and Support", Category: "Implementation Services", Subcategory: "Risk Management"

3. Question: "What is the process for invoice validation?"
Answer: "Invoice validation involves checking for discrepancies..."
Classification: Stack: "Procurement and AP Automation", Category: "AP Automation", Subcategory: "Validation and Approval"

4. Question: "How does the system handle user access control?"
Answer: "Access control is managed via SSO and MFA..."
Classification: Stack: "Security & Due Diligence", Category: "Access Control", Subcategory: "Methods"

Return the classification in the format:
Stack: "[stack_name]"
Category: "[category_name]"
Subcategory: "[subcategory_name]"`

func classificationPrompt(question, answer, hierarchy string) string {
	return fmt.Sprintf(classificationPromptTemplate, question, answer, hierarchy)
}
