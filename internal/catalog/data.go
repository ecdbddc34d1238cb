package catalog

import (
	r "github.com/dbmrq/faang/internal/resource"
)

// builtin returns the resources shipped with the binary, in display order.
func builtin() []r.Resource {
	return []r.Resource{
		// Coding platforms
		r.MustNew("NeetCode 150",
			"Curated list of 150 LeetCode problems with video explanations",
			"https://neetcode.io/",
			r.TypePlatform, r.CategoryCoding,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.WithRating(4.9),
			r.WithTags("leetcode", "problems", "video-solutions", "2025"),
		),
		r.MustNew("LeetCode Grind 75",
			"Structured study plan with 75 essential problems",
			"https://www.techinterviewhandbook.org/grind75",
			r.TypePlatform, r.CategoryCoding,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.WithRating(4.8),
			r.WithTags("leetcode", "study-plan", "structured"),
		),
		r.MustNew("AlgoExpert",
			"160+ curated problems with video explanations",
			"https://www.algoexpert.io/",
			r.TypePlatform, r.CategoryCoding,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.Paid("$99/year"),
			r.WithRating(4.7),
			r.WithTags("problems", "video", "structured"),
		),
		r.MustNew("Blind 75",
			"The original list of 75 must-do LeetCode questions",
			"https://leetcode.com/discuss/general-discussion/460599/blind-75-leetcode-questions",
			r.TypeArticle, r.CategoryCoding,
			r.WithDifficulty(r.DifficultyAdvanced),
			r.WithRating(4.7),
			r.WithTags("leetcode", "problems", "classic"),
		),

		// Books
		r.MustNew("Cracking the Coding Interview",
			"189 programming problems and solutions - Still #1 for FAANG",
			"https://www.amazon.com/dp/0984782850",
			r.TypeBook, r.CategoryCoding,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.Paid("$30-40"),
			r.WithRating(4.8),
			r.WithTags("classic", "problems", "gayle-mcdowell"),
		),
		r.MustNew("System Design Interview Vol. 1",
			"An insider's guide to system design by Alex Xu",
			"https://www.amazon.com/dp/B08CMF2CQF",
			r.TypeBook, r.CategorySystemDesign,
			r.WithDifficulty(r.DifficultyAdvanced),
			r.Paid("$30-35"),
			r.WithRating(4.9),
			r.WithTags("system-design", "alex-xu", "diagrams"),
		),
		r.MustNew("Designing Data-Intensive Applications",
			"Martin Kleppmann on the storage and distributed systems behind large services",
			"https://dataintensive.net/",
			r.TypeBook, r.CategorySystemDesign,
			r.WithDifficulty(r.DifficultyExpert),
			r.Paid("$40-50"),
			r.WithRating(4.9),
			r.WithTags("distributed-systems", "databases", "kleppmann"),
		),

		// YouTube channels
		r.MustNew("NeetCode YouTube",
			"360K+ subs, Google engineer, best LeetCode explanations",
			"https://www.youtube.com/@NeetCode",
			r.TypeVideo, r.CategoryCoding,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.WithRating(4.9),
			r.WithTags("youtube", "leetcode", "explanations"),
		),
		r.MustNew("ByteByteGo",
			"Alex Xu's system design channel - 500K+ subscribers",
			"https://www.youtube.com/@ByteByteGo",
			r.TypeVideo, r.CategorySystemDesign,
			r.WithDifficulty(r.DifficultyAdvanced),
			r.WithRating(4.9),
			r.WithTags("youtube", "system-design", "alex-xu"),
		),

		// Courses
		r.MustNew("Grokking the System Design Interview",
			"Pattern-based approach to system design",
			"https://www.designgurus.io/course/grokking-the-system-design-interview",
			r.TypeCourse, r.CategorySystemDesign,
			r.WithDifficulty(r.DifficultyAdvanced),
			r.Paid("$122/year"),
			r.WithRating(4.7),
			r.WithTags("course", "patterns", "interactive"),
		),

		// Repositories
		r.MustNew("System Design Primer",
			"Learn how to design large-scale systems, with Anki flashcards",
			"https://github.com/donnemartin/system-design-primer",
			r.TypeRepository, r.CategorySystemDesign,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.WithRating(4.8),
			r.WithTags("github", "system-design", "free", "flashcards"),
		),
		r.MustNew("Machine Learning Interviews GitHub",
			"Comprehensive free guide for ML interviews",
			"https://github.com/alirezadir/Machine-Learning-Interviews",
			r.TypeRepository, r.CategoryAIML,
			r.WithDifficulty(r.DifficultyAdvanced),
			r.WithRating(4.8),
			r.WithTags("ml", "ai", "github", "free"),
		),

		// Tools
		r.MustNew("Big O Cheat Sheet",
			"Time and space complexity reference",
			"https://www.bigocheatsheet.com/",
			r.TypeTool, r.CategoryDataStructures,
			r.WithDifficulty(r.DifficultyBeginner),
			r.WithRating(4.7),
			r.WithTags("reference", "complexity", "cheatsheet"),
		),
		r.MustNew("VisuAlgo",
			"Visualize data structures and algorithms",
			"https://visualgo.net/",
			r.TypeTool, r.CategoryAlgorithms,
			r.WithDifficulty(r.DifficultyBeginner),
			r.WithRating(4.8),
			r.WithTags("visualization", "interactive", "learning"),
		),

		// Object-oriented design
		r.MustNew("Refactoring.Guru Design Patterns",
			"Illustrated catalog of the classic object-oriented design patterns",
			"https://refactoring.guru/design-patterns",
			r.TypeArticle, r.CategoryOOP,
			r.WithDifficulty(r.DifficultyIntermediate),
			r.WithRating(4.8),
			r.WithTags("design-patterns", "oop", "low-level-design"),
		),

		// Behavioral and mock interviews
		r.MustNew("Tech Interview Handbook: Behavioral",
			"STAR answers and common behavioral questions asked at big tech companies",
			"https://www.techinterviewhandbook.org/behavioral-interview/",
			r.TypeArticle, r.CategoryBehavioral,
			r.WithDifficulty(r.DifficultyBeginner),
			r.WithRating(4.6),
			r.WithTags("star", "behavioral", "leadership"),
		),
		r.MustNew("Pramp",
			"Free peer-to-peer mock interviews",
			"https://www.pramp.com/",
			r.TypePlatform, r.CategoryGeneral,
			r.WithRating(4.4),
			r.WithTags("mock-interview", "peers", "practice"),
		),
		r.MustNew("Interviewing.io",
			"Anonymous mock interviews with engineers from top companies",
			"https://interviewing.io/",
			r.TypePlatform, r.CategoryGeneral,
			r.WithDifficulty(r.DifficultyAdvanced),
			r.Paid("from $225/session"),
			r.WithRating(4.6),
			r.WithTags("mock-interview", "feedback", "anonymous"),
		),
	}
}
