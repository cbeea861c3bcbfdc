package fixture

// 初始分类
var categoryTitles = []string{
	"Classic Literature",
	"Dystopian",
	"Romance",
	"Science Fiction",
	"Fantasy",
	"Mystery",
	"Thriller",
	"Non-Fiction",
	"Biography",
	"Self-Help",
	"Fiction",
}

type seedUser struct {
	firstname string
	lastname  string
	email     string
}

// 初始用户，密码统一为 fixture.password
var seedUsers = []seedUser{
	{"John", "Doe", "john.doe@example.com"},
	{"Jane", "Smith", "jane.smith@example.com"},
	{"Alice", "Johnson", "alice.johnson@example.com"},
}

type seedRating struct {
	star     int
	comment  string
	postedBy string // 用户邮箱
}

type seedBook struct {
	title       string
	author      string
	description string
	price       float64
	category    string // 分类名称
	pages       int
	tags        string
	ratings     []seedRating
	totalRating string
}

var seedBooks = []seedBook{
	{
		title:       "The Great Gatsby",
		author:      "F. Scott Fitzgerald",
		description: "A novel set in the Roaring Twenties, narrating the story of Jay Gatsby and his unrequited love for Daisy Buchanan.",
		price:       10.99,
		category:    "Classic Literature",
		pages:       180,
		tags:        "classic, twenties, romance",
		ratings: []seedRating{
			{5, "A timeless masterpiece.", "john.doe@example.com"},
			{4, "Captivating story and characters.", "jane.smith@example.com"},
		},
		totalRating: "4.5",
	},
	{
		title:       "To Kill a Mockingbird",
		author:      "Harper Lee",
		description: "A novel about racial injustice in the Deep South, seen through the eyes of young Scout Finch.",
		price:       8.99,
		category:    "Classic Literature",
		pages:       281,
		tags:        "classic, racial, justice",
		ratings: []seedRating{
			{5, "Profound and moving.", "john.doe@example.com"},
			{5, "A book everyone should read.", "alice.johnson@example.com"},
		},
		totalRating: "5.0",
	},
	{
		title:       "1984",
		author:      "George Orwell",
		description: "A dystopian novel that explores the dangers of totalitarianism and extreme political ideology.",
		price:       9.99,
		category:    "Dystopian",
		pages:       328,
		tags:        "dystopian, political, thriller",
		ratings: []seedRating{
			{5, "Chilling and thought-provoking.", "jane.smith@example.com"},
			{4, "A must-read for everyone.", "alice.johnson@example.com"},
		},
		totalRating: "4.5",
	},
	{
		title:       "Pride and Prejudice",
		author:      "Jane Austen",
		description: "A romantic novel that critiques the societal norms and expectations of 19th-century England.",
		price:       7.99,
		category:    "Romance",
		pages:       279,
		tags:        "romance, classic, society",
		ratings: []seedRating{
			{5, "A delightful read.", "john.doe@example.com"},
			{4, "Charming and witty.", "jane.smith@example.com"},
		},
		totalRating: "4.5",
	},
	{
		title:       "The Catcher in the Rye",
		author:      "J.D. Salinger",
		description: "A novel about teenage alienation and angst as experienced by the protagonist, Holden Caulfield.",
		price:       6.99,
		category:    "Fiction",
		pages:       214,
		tags:        "fiction, classic, teenage",
		ratings: []seedRating{
			{4, "A powerful narrative.", "alice.johnson@example.com"},
			{3, "A bit overrated but still good.", "john.doe@example.com"},
		},
		totalRating: "3.5",
	},
}
