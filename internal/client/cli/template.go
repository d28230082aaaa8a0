package cli

const usageTemplate = `
Floorplan Client

Usage:
  floorplan [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   Server URL (default: http://localhost:8080)
  --db PATH      Path to local database (default: floorplan-client.db)

Commands:
  register                 Register new user
  login                    Login to server
  logout                   Logout from server
  status                   Show session, connectivity and pending changes
  create <name> [payload]  Create a floor plan (payload is a JSON object)
  list                     List floor plans
  get <id>                 Show full floor plan details
  edit <id> <delta>        Apply a JSON delta to a floor plan
  delete <id>              Delete a floor plan
  sync                     Push queued changes to the server
  watch [interval]         Keep syncing whenever the server becomes reachable

Offline use:
  create, edit and delete are captured in a local queue first. When the
  server is reachable the queue is drained immediately; otherwise run
  'floorplan sync' (or 'floorplan watch') after connectivity returns.

Examples:
  floorplan register
  floorplan login
  floorplan create "Office 4F" '{"walls": 12, "scale": 50}'
  floorplan edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 '{"scale": 100}'
  floorplan list
  floorplan watch 10s
  floorplan --server https://example.com login
`

const planListTemplate = `
=== Floor Plans ===
{{- if eq (len .) 0 }}

No floor plans found.

Use 'floorplan create <name>' to create your first floor plan.
{{ else }}

Found {{len .}} floor plan(s):
{{ range . }}
- {{ .Name }}
   ID:       {{ .ID }}
   Version:  {{ .Version }}
   Modified: {{ .LastModifiedAt.Format "2006-01-02 15:04:05" }}{{ if .LastModifiedBy }} by {{ .LastModifiedBy }}{{ end }}
{{ end }}
{{- end }}
`

const planDetailsTemplate = `
=== Floor Plan Details ===

Name:     {{ .Plan.Name }}
ID:       {{ .Plan.ID }}
Version:  {{ .Plan.Version }}
Modified: {{ .Plan.LastModifiedAt.Format "2006-01-02 15:04:05" }}{{ if .Plan.LastModifiedBy }} by {{ .Plan.LastModifiedBy }}{{ end }}

Payload:
{{ .PayloadJSON }}
`
