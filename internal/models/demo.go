package models

import (
	"time"
)

// DemoNews builds the fixed demonstration dataset shown when the store holds
// no records. Dates are anchored to the supplied current date (YYYY-MM-DD) so
// the "today" entries always land in the hero section; createdAt values are
// fixed offsets within each day, keeping the set deterministic for a given day.
func DemoNews(today string) []*NewsRecord {
	day, err := time.Parse("2006-01-02", today)
	if err != nil {
		day = time.Now().UTC()
	}

	date := func(daysAgo int) string {
		return day.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}
	at := func(daysAgo, hour int) int64 {
		return day.AddDate(0, 0, -daysAgo).Add(time.Duration(hour) * time.Hour).UnixMilli()
	}

	return []*NewsRecord{
		{
			ID:        "demo-1",
			Title:     "OpenAI Announces GPT-5 with Revolutionary Reasoning Capabilities",
			Summary:   "The latest iteration of GPT brings unprecedented reasoning abilities, outperforming previous models on complex mathematical and logical tasks by a significant margin.",
			Content:   "Full article content here...",
			Date:      date(0),
			SourceURL: "https://openai.com",
			ImageURL:  "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
			Category:  "LLM",
			Tags:      []string{"openai", "gpt-5", "language-models", "ai-research"},
			CreatedAt: at(0, 17),
		},
		{
			ID:        "demo-2",
			Title:     "Google DeepMind Achieves Breakthrough in Protein Folding Prediction",
			Summary:   "AlphaFold 3 can now predict protein structures with near-experimental accuracy, opening new frontiers in drug discovery and biotechnology.",
			Content:   "Full article content here...",
			Date:      date(0),
			SourceURL: "https://deepmind.google",
			ImageURL:  "https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?w=800",
			Category:  "Research",
			Tags:      []string{"deepmind", "protein-folding", "alphafold", "biotechnology"},
			CreatedAt: at(0, 15),
		},
		{
			ID:        "demo-3",
			Title:     "Meta Releases Open-Source Vision Model Rivaling GPT-4V",
			Summary:   "Llama Vision brings powerful multimodal capabilities to the open-source community, democratizing access to advanced computer vision AI.",
			Content:   "Full article content here...",
			Date:      date(0),
			SourceURL: "https://ai.meta.com",
			Category:  "Open Source",
			Tags:      []string{"meta", "llama", "computer-vision", "open-source"},
			CreatedAt: at(0, 13),
		},
		{
			ID:        "demo-4",
			Title:     "Tesla Unveils Optimus Gen 3: Humanoid Robot with Advanced Dexterity",
			Summary:   "The latest generation of Tesla's humanoid robot demonstrates human-like hand movements and can perform complex assembly tasks.",
			Content:   "Full article content here...",
			Date:      date(0),
			SourceURL: "https://tesla.com",
			ImageURL:  "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800",
			Category:  "Robotics",
			Tags:      []string{"tesla", "optimus", "humanoid-robot", "robotics"},
			CreatedAt: at(0, 11),
		},
		{
			ID:        "demo-5",
			Title:     "Anthropic Introduces Constitutional AI 2.0",
			Summary:   "New safety framework allows Claude to better understand and follow complex ethical guidelines while maintaining helpfulness.",
			Content:   "Full article content here...",
			Date:      date(1),
			SourceURL: "https://anthropic.com",
			Category:  "LLM",
			Tags:      []string{"anthropic", "claude", "ai-safety", "constitutional-ai"},
			CreatedAt: at(1, 14),
		},
		{
			ID:        "demo-6",
			Title:     "Microsoft Copilot Gets Real-Time Code Execution",
			Summary:   "GitHub Copilot can now execute and test code in real-time, providing instant feedback and bug detection during development.",
			Content:   "Full article content here...",
			Date:      date(1),
			SourceURL: "https://github.com/copilot",
			Category:  "Industry",
			Tags:      []string{"microsoft", "copilot", "coding", "developer-tools"},
			CreatedAt: at(1, 12),
		},
		{
			ID:        "demo-7",
			Title:     "NVIDIA Announces Blackwell Ultra: 10x Performance Boost for AI Training",
			Summary:   "Next-generation GPU architecture promises to dramatically reduce AI training costs and time for large language models.",
			Content:   "Full article content here...",
			Date:      date(2),
			SourceURL: "https://nvidia.com",
			ImageURL:  "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=800",
			Category:  "Industry",
			Tags:      []string{"nvidia", "gpu", "ai-hardware", "blackwell"},
			CreatedAt: at(2, 16),
		},
		{
			ID:        "demo-8",
			Title:     "Hugging Face Launches Model Marketplace with Revenue Sharing",
			Summary:   "Open-source AI hub introduces monetization options for model creators, enabling sustainable development of community models.",
			Content:   "Full article content here...",
			Date:      date(2),
			SourceURL: "https://huggingface.co",
			Category:  "Open Source",
			Tags:      []string{"huggingface", "open-source", "marketplace", "ai-models"},
			CreatedAt: at(2, 14),
		},
	}
}
