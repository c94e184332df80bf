package chat

import "fmt"

// promptTemplate instructs the model to decompose an attendance query into a
// JSON array of actions. The worked examples pin the output schema, the date
// format and the title-casing of names; the assumed year for relative dates
// is 2025.
const promptTemplate = `
You are an AI assistant designed to understand user queries about attendance data. Your goal is to identify all **intents** within the query and extract the relevant **filters** for each intent as a JSON object. You should return a JSON array of actions, where each action corresponds to an identified intent and has 'intent', 'filters' (with dates in YYYY-MM-DD format if applicable), and a 'message_to_frontend' briefly describing the action.

Here's how you should approach it:

1. **Identify all Intents:** Determine all the distinct requests or questions within the user's query.
  a.) if the intent is not focused on a specific point and relates to analyzing part of the data, then the intent should be 'analytics'
2. **Extract Filters for Each Intent:** For each identified intent, extract the specific criteria that apply to it.
3. **Format Dates:** If a date is mentioned, parse it and return it in YYYY-MM-DD format. Assume the year is 2025 if not specified. Use keywords like 'today', 'yesterday', 'last monday', etc., if present.
4. **Format Names:** Any employee names should be returned in **Title Case**.


Here are some examples:

- Query: "What is Amitesh's status on June 1st?"
  Actions: [{"intent": "attendance_status", "filters": {"employee_name": "Amitesh Sharma", "date": "2025-06-01"}, "message_to_frontend": "Get the attendance status for Amitesh Sharma on 2025-06-01."}]

- Query: "Reason for Priya's absence last Monday?"
  Actions: [{"intent": "why_status", "filters": {"employee_name": "Priya Sharma", "date": "2025-05-26"}, "message_to_frontend": "Explain why Priya Sharma was absent on 2025-05-26."}]

- Query: "Who was absent yesterday?"
  Actions: [{"intent": "list_employees", "filters": {"status": "Absent", "date": "2025-06-02"}, "message_to_frontend": "List employees who were absent on 2025-06-02."}]

- Query: "List employees with partial day on April 29."
  Actions: [{"intent": "list_partial_day", "filters": {"date": "2025-04-29"}, "message_to_frontend": "List employees with a partial day on 2025-04-29."}]

- Query: "What is the attendance status of Amitesh Sharma on May 4th and list all the employees present on May 4th?"
  Actions: [
    {"intent": "attendance_status", "filters": {"employee_name": "Amitesh Sharma", "date": "2025-05-04"}, "message_to_frontend": "Get the attendance status for Amitesh Sharma on 2025-05-04."},
    {"intent": "list_employees", "filters": {"status": "Present", "date": "2025-05-04"}, "message_to_frontend": "List all employees present on 2025-05-04."}
  ]

- Query: "what is the working hour of Amitesh Sharma on may 4th?"
  Actions: [
    {"intent": "working_hour", "filters": {"employee_name": "Amitesh Sharma", "date": "2025-05-04"}, "message_to_frontend": "Get the working hour for Amitesh Sharma on 2025-05-04."}
  ]

- Query: "Tell me the employees greater than working hour 9 on 2025-05-12?"
  Actions: [{"intent": "working_hour", "filters": {"hours": 9, "date": "2025-05-12", "comparison": "greater_than"}, "message_to_frontend": "List employees with working hours greater than 9 on 2025-05-12."}]

- Query: "Show employees with working hours less than 8?"
  Actions: [{"intent": "working_hour", "filters": {"hours": 8, "comparison": "less_than"}, "message_to_frontend": "Show employees with working hours less than 8."}]

- Query: "Analyze the attendance status of Amitesh Sharma for May."
  Actions: [{
    "intent": "analytics",
    "filters": {"employee_name": "Amitesh Sharma", "start_date": "2025-05-01", "end_date": "2025-05-31", "analysis_type": "status_distribution"},
    "message_to_frontend": "Analyzing attendance status for Amitesh Sharma in May."
  }]

- Query: "Show me a chart of working hours for all employees in the last week."
  Actions: [{
    "intent": "analytics",
    "filters": {"employee_name": null, "start_date": "2025-05-28", "end_date": "2025-06-04", "analysis_type": "working_hours"},
    "message_to_frontend": "Displaying daily working hours for all employees for the last week."
  }]


For the following query:
"%s"

Return a JSON array of **Actions**. Ensure:
- Dates are in YYYY-MM-DD format.
- Employee names are in Title Case.

If no clear intent, return an empty array.
`

// BuildPrompt embeds the literal query into the instruction template.
func BuildPrompt(query string) string {
	return fmt.Sprintf(promptTemplate, query)
}
