package generate

import "fmt"

// questionPrefix and answerPrefix are the markers the prompts instruct the
// model to emit; parsing keys off them and strips them from the output.
const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
)

const questionPromptTemplate = `As a Request for Proposal (RFP) response specialist, analyze this document section and generate %d high-value questions.

Focus on questions that are related to RFP which has prospects as targets.
Questions should be of type WH Questions as it will be used as a reference for the questions that can be asked when submitting an RFP but of course related to the document.

Do not generate questions:
- On the document's table of contents.
- On the document titles and headings.

Questions should probe critical document information.

Document Section:
%s

Return each question on a new line prefixed with "Q: ".`

const answerPromptTemplate = `Given the following question and document context, provide a precise answer that can be directly verified from the text. Include exact figures, dates, or specifications when available.

Question: %s

When providing your answer:
1. Answer must be precise, directly verifiable from the text and fully completed
2. Include exact figures, dates, or specifications when available
3. Only include information you can verify in the context
4. Be specific about which document contains each fact

Document Context:
%s

Return the answer prefixed with "A: ".`

func questionPrompt(numQuestions int, text string) string {
	return fmt.Sprintf(questionPromptTemplate, numQuestions, text)
}

func answerPrompt(question, context string) string {
	return fmt.Sprintf(answerPromptTemplate, question, context)
}
