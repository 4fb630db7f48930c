// api/cmd/seed/main.go
//
// Seed command: creates the content schema and the analytics table, wipes
// the content collections and imports the initial portfolio data. The API
// server never writes content; this command is the only content writer.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"devfolio/api/database"
	"devfolio/api/logger"
	"devfolio/api/models"
)

const contentSchema = `
CREATE TABLE IF NOT EXISTS projects (
	internal_id SERIAL PRIMARY KEY,
	id          INTEGER NOT NULL UNIQUE,
	title       TEXT NOT NULL,
	short_desc  TEXT NOT NULL,
	description TEXT NOT NULL,
	details     TEXT[] NOT NULL DEFAULT '{}',
	impact      TEXT[] NOT NULL DEFAULT '{}',
	tech_stack  TEXT[] NOT NULL DEFAULT '{}',
	image       TEXT NOT NULL DEFAULT '',
	github      TEXT NOT NULL DEFAULT '',
	sort_order  INTEGER NOT NULL DEFAULT 0,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS skills (
	internal_id SERIAL PRIMARY KEY,
	category    TEXT NOT NULL,
	skills      TEXT[] NOT NULL DEFAULT '{}',
	sort_order  INTEGER NOT NULL DEFAULT 0,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS experience (
	internal_id SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	sort_order  INTEGER NOT NULL DEFAULT 0,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS contact_info (
	internal_id SERIAL PRIMARY KEY,
	email       TEXT NOT NULL,
	linkedin    TEXT NOT NULL DEFAULT '',
	github      TEXT NOT NULL DEFAULT '',
	resume      TEXT NOT NULL DEFAULT '',
	is_active   BOOLEAN NOT NULL DEFAULT TRUE
);
`

const pageviewSchema = `
CREATE TABLE IF NOT EXISTS pageviews (
	event_id   String,
	path       String,
	user_agent String,
	ip         String,
	timestamp  DateTime
)
ENGINE = MergeTree()
ORDER BY (timestamp, path)
`

var projectsData = []models.Project{
	{
		ID:        1,
		Title:     "LLM-Powered PDF → Summary → Voice Briefing System",
		ShortDesc: "End-to-end pipeline converting large PDFs into concise summaries and natural audio briefings",
		Desc:      "Built an end-to-end pipeline that converts large PDFs into concise summaries and natural-sounding audio briefings.",
		Details: []string{
			"Quantized FLAN-T5 summarization",
			"Chunking + sliding context windows",
			"Prompt templates for factual consistency",
			"Text-to-Speech using Parler TTS",
			"Async processing pipeline",
			"Batch jobs for large documents",
			"Evaluation with ROUGE + BERTScore",
			"Caching summaries to reduce cost",
		},
		Impact: []string{
			"Reduced reading time by 80%",
			"Handles 100+ page documents in minutes",
			"Designed for research papers and reports",
		},
		TechStack: []string{"Python", "Transformers", "T5/FLAN", "TTS", "FastAPI", "Docker"},
		Image:     "https://images.unsplash.com/photo-1664526937033-fe2c11f1be25",
		Github:    "https://github.com/pratham",
		Order:     1,
		IsActive:  true,
	},
	{
		ID:        2,
		Title:     "Agentic Docker Shield – Autonomous Container Security Scanner",
		ShortDesc: "AI-agent system that scans Docker images, identifies CVEs, and generates remediation steps",
		Desc:      "Developed an AI-agent system that scans Docker images, identifies vulnerabilities (CVEs), and generates prioritized remediation steps.",
		Details: []string{
			"Multi-agent architecture using CrewAI-style patterns",
			"Tools for CVE database lookup + reasoning + patch suggestions",
			"Memory and retry strategies for stable tool usage",
			"Markdown/HTML reports auto-generated",
			"Risk scoring & prioritization",
			"Retrieval system for vulnerability docs",
			"Runs inside CI pipelines",
		},
		Impact: []string{
			"Automated security auditing",
			"Reduced manual review time by 70%",
			"Works as a pre-deployment gate",
		},
		TechStack: []string{"Python", "Docker", "Agents", "Retrieval", "CVE feeds"},
		Image:     "https://images.unsplash.com/photo-1531403009284-440f080d1e12",
		Github:    "https://github.com/pratham",
		Order:     2,
		IsActive:  true,
	},
	{
		ID:        3,
		Title:     "Custom RAG Platform for Document Intelligence",
		ShortDesc: "Production-ready Retrieval Augmented Generation system for querying private documents with citations",
		Desc:      "Built a production-ready Retrieval Augmented Generation system for querying private documents with citations.",
		Details: []string{
			"Hybrid search (BM25 + embeddings)",
			"Sentence-transformer embeddings",
			"FAISS/Chroma vector DB",
			"Metadata enrichment",
			"Chunk heuristics experimentation",
			"Query rewriting + reranking",
			"Citation tracing",
			"Hallucination guardrails",
			"API-first architecture",
		},
		Impact: []string{
			"40–50% answer accuracy improvement vs naive prompting",
			"Reduced hallucinations",
			"Sub-second retrieval latency",
		},
		TechStack: []string{"Python", "LangChain", "FAISS", "FastAPI"},
		Image:     "https://images.unsplash.com/photo-1743385779347-1549dabf1320",
		Github:    "https://github.com/pratham",
		Order:     3,
		IsActive:  true,
	},
	{
		ID:        4,
		Title:     "ROOTZ – Hotel Management Portal",
		ShortDesc: "Complete hotel operations platform with booking engine and role-based dashboards",
		Desc:      "Designed and built a complete hotel operations platform.",
		Details: []string{
			"Booking lifecycle engine",
			"Role-based dashboards",
			"JWT authentication",
			"Inventory + room allocation logic",
			"Admin analytics",
			"REST APIs",
			"Component refactoring",
			"Validation + testing",
			"Deployed on cloud",
		},
		Impact: []string{
			"Simplified operations for admins",
			"Real-time availability tracking",
		},
		TechStack: []string{"MongoDB", "Express", "React", "Node.js"},
		Image:     "https://images.unsplash.com/photo-1523961131990-5ea7c61b2107",
		Github:    "https://github.com/pratham",
		Order:     4,
		IsActive:  true,
	},
}

var skillsData = []models.SkillGroup{
	{Category: "AI / LLM Systems", Skills: []string{"Agentic AI", "RAG", "Prompt Engineering", "Tool Use", "Function Calling", "Evaluation", "Guardrails"}, Order: 1, IsActive: true},
	{Category: "Backend", Skills: []string{"Python", "Django", "FastAPI", "Node.js", "REST APIs", "Docker", "CI/CD"}, Order: 2, IsActive: true},
	{Category: "ML / Data", Skills: []string{"Transformers", "FAISS", "Embeddings", "PyTorch"}, Order: 3, IsActive: true},
	{Category: "Languages", Skills: []string{"Python", "C++", "JavaScript", "SQL"}, Order: 4, IsActive: true},
}

var experienceData = []models.Experience{
	{Title: "Research Intern – Edge AI", Desc: "Published research in hybrid optimization", Order: 1, IsActive: true},
	{Title: "Top 10 – Smart India Hackathon", Desc: "National level innovation challenge", Order: 2, IsActive: true},
	{Title: "200+ DSA Problems Solved", Desc: "Strong foundation in algorithms and data structures", Order: 3, IsActive: true},
	{Title: "AI/ML Certification", Desc: "ISRO/IIRS certified in AI/ML", Order: 4, IsActive: true},
}

var contactData = models.Contact{
	Email:    "pratham@example.com",
	Linkedin: "https://linkedin.com/in/pratham",
	Github:   "https://github.com/pratham",
	Resume:   "/resume.pdf",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	seedLog, err := logger.New("dev")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer seedLog.Sync()

	dbClient, err := database.NewPostgresDB(seedLog)
	if err != nil {
		seedLog.Fatal("failed to initialize PostgreSQL database", "error", err)
	}
	defer dbClient.Close()

	chClient, err := database.NewClickHouseDB(seedLog)
	if err != nil {
		seedLog.Fatal("failed to initialize ClickHouse database", "error", err)
	}
	defer chClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	seedLog.Info("creating content schema")
	if _, err := dbClient.DB.ExecContext(ctx, contentSchema); err != nil {
		seedLog.Fatal("failed to create content schema", "error", err)
	}

	seedLog.Info("creating pageviews table")
	if err := chClient.Conn.Exec(ctx, pageviewSchema); err != nil {
		seedLog.Fatal("failed to create pageviews table", "error", err)
	}

	seedLog.Info("clearing existing content")
	for _, table := range []string{"projects", "skills", "experience", "contact_info"} {
		if _, err := dbClient.DB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			seedLog.Fatal("failed to clear table", "table", table, "error", err)
		}
	}

	for _, p := range projectsData {
		_, err := dbClient.DB.ExecContext(ctx, `
			INSERT INTO projects (id, title, short_desc, description, details, impact, tech_stack, image, github, sort_order, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.ID, p.Title, p.ShortDesc, p.Desc,
			pq.Array(p.Details), pq.Array(p.Impact), pq.Array(p.TechStack),
			p.Image, p.Github, p.Order, p.IsActive,
		)
		if err != nil {
			seedLog.Fatal("failed to insert project", "id", p.ID, "error", err)
		}
	}
	seedLog.Info("inserted projects", "count", len(projectsData))

	for _, s := range skillsData {
		_, err := dbClient.DB.ExecContext(ctx, `
			INSERT INTO skills (category, skills, sort_order, is_active)
			VALUES ($1, $2, $3, $4)`,
			s.Category, pq.Array(s.Skills), s.Order, s.IsActive,
		)
		if err != nil {
			seedLog.Fatal("failed to insert skill category", "category", s.Category, "error", err)
		}
	}
	seedLog.Info("inserted skill categories", "count", len(skillsData))

	for _, e := range experienceData {
		_, err := dbClient.DB.ExecContext(ctx, `
			INSERT INTO experience (title, description, sort_order, is_active)
			VALUES ($1, $2, $3, $4)`,
			e.Title, e.Desc, e.Order, e.IsActive,
		)
		if err != nil {
			seedLog.Fatal("failed to insert experience item", "title", e.Title, "error", err)
		}
	}
	seedLog.Info("inserted experience items", "count", len(experienceData))

	if _, err := dbClient.DB.ExecContext(ctx, `
		INSERT INTO contact_info (email, linkedin, github, resume, is_active)
		VALUES ($1, $2, $3, $4, TRUE)`,
		contactData.Email, contactData.Linkedin, contactData.Github, contactData.Resume,
	); err != nil {
		seedLog.Fatal("failed to insert contact info", "error", err)
	}
	seedLog.Info("inserted contact info")

	seedLog.Info("database seeding completed")
}
