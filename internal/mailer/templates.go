package mailer

import "html/template"

// recurringTaskTemplate is the fixed template for the email sent when a
// task is created with a recurrence other than None.
var recurringTaskTemplate = template.Must(template.New("recurring_task").Parse(`
{{define "subject"}}Recurring task created: {{.Title}}{{end}}

{{define "plainBody"}}A new recurring task has been created.

Title: {{.Title}}
Due: {{.DueDate}}
Priority: {{.Priority}}
Category: {{.Category}}
Repeats: {{.Recurrence}}
{{end}}

{{define "htmlBody"}}<html>
<body>
<h2>New recurring task</h2>
<table>
<tr><td>Title</td><td>{{.Title}}</td></tr>
<tr><td>Due</td><td>{{.DueDate}}</td></tr>
<tr><td>Priority</td><td>{{.Priority}}</td></tr>
<tr><td>Category</td><td>{{.Category}}</td></tr>
<tr><td>Repeats</td><td>{{.Recurrence}}</td></tr>
</table>
</body>
</html>{{end}}
`))

// recurringTaskData is the view model rendered into recurringTaskTemplate.
type recurringTaskData struct {
	Title      string
	DueDate    string
	Priority   string
	Category   string
	Recurrence string
}
