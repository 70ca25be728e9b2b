package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
	"github.com/natlarsen/arab-spring-analysis/internal/report"
	"github.com/natlarsen/arab-spring-analysis/internal/store"
)

const defaultDBPath = "report.db"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: surveyreport <report-spec.json> | surveyreport runs")
		os.Exit(1)
	}

	if os.Args[1] == "runs" {
		listRuns()
		return
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading report spec:", err)
		os.Exit(1)
	}

	var spec model.ReportSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing report spec:", err)
		os.Exit(1)
	}

	dbPath := spec.Export.DB
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	if err := store.InitDB(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing store:", err)
		os.Exit(1)
	}

	runID := uuid.New().String()
	if err := store.SaveRun(runID, spec); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving run:", err)
		os.Exit(1)
	}

	if err := report.Run(context.Background(), runID, spec); err != nil {
		fmt.Fprintln(os.Stderr, "Report run failed:", err)
		os.Exit(1)
	}

	run, err := store.GetRun(runID)
	if err == nil {
		fmt.Printf("Run %s finished with status: %v\n", runID, run["status"])
	}
}

func listRuns() {
	if err := store.InitDB(defaultDBPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing store:", err)
		os.Exit(1)
	}

	runs, err := store.ListRuns()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error listing runs:", err)
		os.Exit(1)
	}

	for _, run := range runs {
		fmt.Printf("%v  %-10v  %v\n", run["id"], run["status"], run["createdAt"])
	}
}
