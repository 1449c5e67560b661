package ai

import "fmt"

const (
	chatUserPrefix    = `User message: "`
	chatDefaultPrefix = `You are a helpful AI task management assistant. User: "`
	chatSuffix        = "\"\n\nRespond helpfully and conversationally."

	suggestionsMarker = "Please format your response as JSON with fields: subtasks (array), estimated_time (string), priority_level (string), risks (array)."
	insightsMarker    = "Provide insights in JSON format with fields: trends (array of 4 strings), patterns (array of 4 strings), recommendations (array of 5 strings), and performance_score (number 0-100)."
	summaryMarker     = "Create a concise and professional summary (2-3 sentences) of the following content for a business report:"
)

func ChatPrompt(message, systemPrompt string) string {
	if systemPrompt == "" {
		return chatDefaultPrefix + message + chatSuffix
	}
	return systemPrompt + "\n\n" + chatUserPrefix + message + chatSuffix
}

func SuggestionsPrompt(description string) string {
	return fmt.Sprintf(`You are a task management expert. Given the following task description, suggest:
1. 3-5 actionable subtasks
2. Estimated time to complete
3. Priority level (High, Medium, Low)
4. Potential risks or considerations

Task: %s

%s`, description, suggestionsMarker)
}

// InsightsPrompt takes the task data already encoded as JSON.
func InsightsPrompt(data []byte) string {
	return fmt.Sprintf(`You are a data analyst. Analyze the following task/work data and provide meaningful insights:

Data: %s

%s`, data, insightsMarker)
}

func SummaryPrompt(content string) string {
	return fmt.Sprintf(`%s

Content: %s

Return only the summary text.`, summaryMarker, content)
}
