package generation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/excusedraft/excuse-api/internal/domain"
)

// AssertiveBlamePhrases are the blame-shifting phrase patterns the
// prompt instructs the model to use for the assertive tone, so that the
// generated email places responsibility on the recipient rather than
// the sender.
var AssertiveBlamePhrases = []string{
	"due to your lack of advance notice",
	"given your unclear instructions",
	"this could have been avoided if you had",
	"the miscommunication on your end",
	"as we previously discussed but you failed to",
	"per our earlier conversation which you seem to have forgotten",
	"your poor planning has caused",
	"the confusion you created",
	"your failure to communicate properly",
}

// promptData is the data passed to the prompt template.
type promptData struct {
	*domain.ExcuseRequest

	// BlamePhrases is the quoted, comma-joined assertive phrase list.
	BlamePhrases string
}

// promptTemplate renders the user message sent to the model service.
// The JSON format block and the guidelines match what the model is
// expected to follow; the body structure (greeting, apology, reason,
// next steps, signature) is guidance, not a hard schema.
var promptTemplate = template.Must(template.New("excuse").Parse(
	`Generate a professional excuse email based on the following parameters:

Category: {{.Category}}
Tone: {{.Tone}}
Seriousness Level: {{.Seriousness}}/5 (1=very silly, 5=serious)
Recipient: {{.RecipientName}}
Sender: {{.SenderName}}
ETA/When: {{.ETAWhen}}

Please generate a JSON response with the following format:
{
    "subject": "Appropriate email subject line",
    "body": "Dear [Recipient],\n\n[Apology/Excuse]\n\n[Reason/Explanation]\n\n[Next Steps/Resolution]\n\nBest regards,\n[Sender]"
}

Guidelines:
- Match the tone (sincere, playful, corporate, or assertive)
- Adjust formality based on seriousness level
- Include the ETA/when information naturally
- Keep it professional but appropriate for the tone
- Use proper email formatting with line breaks
- For "assertive" tone: Write in a style that blames the recipient for the situation, use language like {{.BlamePhrases}}, make it clear the sender is not at fault and the recipient is responsible
`))

// BuildPrompt produces the single prompt string for a valid
// ExcuseRequest. It is total over well-formed input; the only error
// conditions are a nil request or a request that fails domain
// validation.
func BuildPrompt(req *domain.ExcuseRequest) (string, error) {
	if req == nil {
		return "", errors.New("excuse request cannot be nil")
	}

	if err := req.Validate(); err != nil {
		return "", err
	}

	quoted := make([]string, len(AssertiveBlamePhrases))
	for i, phrase := range AssertiveBlamePhrases {
		quoted[i] = fmt.Sprintf("%q", phrase)
	}

	data := promptData{
		ExcuseRequest: req,
		BlamePhrases:  strings.Join(quoted, ", "),
	}

	var promptBuffer bytes.Buffer
	if err := promptTemplate.Execute(&promptBuffer, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return promptBuffer.String(), nil
}
