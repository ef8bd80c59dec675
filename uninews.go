// Package uninews scrapes news articles from arbitrary web pages and
// rewrites them as clean Markdown, optionally translated to a requested
// language. The pipeline fetches a page, locates and cleans the article
// content, extracts head metadata, and hands the result to a language
// model for formatting.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// gemini/, sqlite/); pipeline orchestration lives in scrape/.
package uninews
