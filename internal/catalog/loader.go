package catalog

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/soyeahso/roster/internal/domain"
	"github.com/soyeahso/roster/internal/logging"
)

// readManifest parses one CSV manifest into header-keyed rows. The first
// record is the header. Rows whose every field is blank are discarded.
// Any failure returns nil so the catalog degrades to an empty table.
func readManifest(path string, log *logging.Logger) []map[string]string {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("manifest not found")
		} else {
			log.Error().Err(err).Str("path", path).Msg("opening manifest")
		}
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("parsing manifest")
		return nil
	}
	if len(records) < 2 {
		return nil
	}

	header := records[0]
	var rows []map[string]string
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		blank := true
		for i, col := range header {
			val := ""
			if i < len(record) {
				val = record[i]
			}
			row[col] = val
			if strings.TrimSpace(val) != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}

	log.Debug().Str("path", path).Int("rows", len(rows)).Msg("manifest parsed")
	return rows
}

func loadAgentRows(path string, log *logging.Logger) []domain.AgentRecord {
	rows := readManifest(path, log)
	agents := make([]domain.AgentRecord, 0, len(rows))
	for _, row := range rows {
		agents = append(agents, domain.AgentRecord{
			Name:               row["name"],
			DisplayName:        row["displayName"],
			Title:              row["title"],
			Icon:               row["icon"],
			Role:               row["role"],
			Identity:           row["identity"],
			CommunicationStyle: row["communicationStyle"],
			Principles:         row["principles"],
			Module:             row["module"],
			Path:               row["path"],
		})
	}
	return agents
}

func loadWorkflowRows(path string, log *logging.Logger) []domain.WorkflowRecord {
	rows := readManifest(path, log)
	workflows := make([]domain.WorkflowRecord, 0, len(rows))
	for _, row := range rows {
		workflows = append(workflows, domain.WorkflowRecord{
			Name:        row["name"],
			Description: row["description"],
			Module:      row["module"],
			Path:        row["path"],
		})
	}
	return workflows
}

func loadTaskRows(path string, log *logging.Logger) []domain.TaskRecord {
	rows := readManifest(path, log)
	tasks := make([]domain.TaskRecord, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.TaskRecord{
			Name:        row["name"],
			Description: row["description"],
			Module:      row["module"],
			Path:        row["path"],
		})
	}
	return tasks
}
