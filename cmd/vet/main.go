package main

// Vet a resume file offline without the API server:
//   go run ./cmd/vet -file resume.pdf [-job job.txt] [-profile]

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-vetter/internal/analyses"
	"resume-vetter/internal/extract"
	"resume-vetter/internal/llm"
	"resume-vetter/internal/llm/hf"
	"resume-vetter/internal/pipeline"
	"resume-vetter/internal/profile"
	"resume-vetter/internal/shared/config"
)

func main() {
	filePath := flag.String("file", "", "path to the resume file (pdf, docx or txt)")
	jobPath := flag.String("job", "", "optional path to a job description for AI review")
	checkProfile := flag.Bool("profile", false, "verify the candidate's profile URL over the network")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.Load()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read file: %v", err)
	}

	fileName := filepath.Base(*filePath)
	text, err := extract.ExtractTextFromBytes(ctx, data, "", fileName)
	if err != nil {
		log.Fatalf("extract text: %v", err)
	}

	analyzer := pipeline.New()
	base, err := analyzer.Run(text)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	report := analyses.Report{Report: base}

	if *checkProfile {
		result := profile.NewChecker().Check(ctx, base.Identity.ProfileURL)
		report.Profile = &result
		// Validity contributes a readiness factor only when a real URL was
		// checked; a missing profile just carries the notice.
		if base.Identity.ProfileURL != pipeline.NotFound && base.Identity.ProfileURL != "" {
			report.Readiness = pipeline.EvaluateReadiness(base.Proficiency, base.ProjectScore, &result.Valid)
		}
	}

	if *jobPath != "" {
		if !cfg.AIReviewEnabled() {
			log.Fatalf("HF_API_TOKEN is required for AI review")
		}
		jobData, err := os.ReadFile(*jobPath)
		if err != nil {
			log.Fatalf("read job description: %v", err)
		}
		client, err := hf.NewClient(cfg.HFAPIToken, cfg.HFModel)
		if err != nil {
			log.Fatalf("init inference client: %v", err)
		}
		review, err := client.ReviewResume(ctx, llm.ReviewInput{
			ResumeText:     text,
			JobDescription: string(jobData),
		})
		if err != nil {
			report.AIReviewError = err.Error()
		} else {
			report.AIReview = &review
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(out))
}
