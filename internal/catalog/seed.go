package catalog

import "github.com/phrazzld/nihongo-api/internal/domain"

type seedWord struct {
	character string
	romanji   string
	meaning   string
}

// hiraganaSeed covers the 46 basic hiragana characters, level 1.
var hiraganaSeed = []seedWord{
	{"あ", "a", "a sound"},
	{"い", "i", "i sound"},
	{"う", "u", "u sound"},
	{"え", "e", "e sound"},
	{"お", "o", "o sound"},
	{"か", "ka", "ka sound"},
	{"き", "ki", "ki sound"},
	{"く", "ku", "ku sound"},
	{"け", "ke", "ke sound"},
	{"こ", "ko", "ko sound"},
	{"さ", "sa", "sa sound"},
	{"し", "shi", "shi sound"},
	{"す", "su", "su sound"},
	{"せ", "se", "se sound"},
	{"そ", "so", "so sound"},
	{"た", "ta", "ta sound"},
	{"ち", "chi", "chi sound"},
	{"つ", "tsu", "tsu sound"},
	{"て", "te", "te sound"},
	{"と", "to", "to sound"},
	{"な", "na", "na sound"},
	{"に", "ni", "ni sound"},
	{"ぬ", "nu", "nu sound"},
	{"ね", "ne", "ne sound"},
	{"の", "no", "no sound"},
	{"は", "ha", "ha sound"},
	{"ひ", "hi", "hi sound"},
	{"ふ", "fu", "fu sound"},
	{"へ", "he", "he sound"},
	{"ほ", "ho", "ho sound"},
	{"ま", "ma", "ma sound"},
	{"み", "mi", "mi sound"},
	{"む", "mu", "mu sound"},
	{"め", "me", "me sound"},
	{"も", "mo", "mo sound"},
	{"や", "ya", "ya sound"},
	{"ゆ", "yu", "yu sound"},
	{"よ", "yo", "yo sound"},
	{"ら", "ra", "ra sound"},
	{"り", "ri", "ri sound"},
	{"る", "ru", "ru sound"},
	{"れ", "re", "re sound"},
	{"ろ", "ro", "ro sound"},
	{"わ", "wa", "wa sound"},
	{"を", "wo", "wo sound"},
	{"ん", "n", "n sound"},
}

// katakanaSeed covers the first ten katakana characters, level 1.
var katakanaSeed = []seedWord{
	{"ア", "a", "a sound"},
	{"イ", "i", "i sound"},
	{"ウ", "u", "u sound"},
	{"エ", "e", "e sound"},
	{"オ", "o", "o sound"},
	{"カ", "ka", "ka sound"},
	{"キ", "ki", "ki sound"},
	{"ク", "ku", "ku sound"},
	{"ケ", "ke", "ke sound"},
	{"コ", "ko", "ko sound"},
}

// kanjiSeed covers ten elementary kanji, level 2.
var kanjiSeed = []seedWord{
	{"水", "mizu", "water"},
	{"火", "hi", "fire"},
	{"木", "ki", "tree/wood"},
	{"土", "tsuchi", "earth/soil"},
	{"金", "kin", "gold/money"},
	{"人", "hito", "person"},
	{"大", "dai", "big"},
	{"小", "shou", "small"},
	{"山", "yama", "mountain"},
	{"川", "kawa", "river"},
}

// cultureSeed holds the cultural catalog entries.
var cultureSeed = []domain.CulturalContent{
	{
		Title:       "Tea Ceremony",
		Description: "Experience the art of traditional Japanese tea preparation",
		ImageURL:    "https://images.unsplash.com/photo-1544427920-c49ccfb85579?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryTraditionalArt,
		Tags:        []string{"tea", "ceremony", "tradition"},
		Content:     "The Japanese tea ceremony, known as 'chanoyu' or 'sado', is a traditional ritual influenced by Zen Buddhism in which powdered green tea, or matcha, is ceremonially prepared by a skilled practitioner and served to a small group of guests in a tranquil setting.",
	},
	{
		Title:       "Sakura Season",
		Description: "The beauty of cherry blossoms across Japan",
		ImageURL:    "https://images.unsplash.com/photo-1522383225653-ed111181a951?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryGeneral,
		Tags:        []string{"sakura", "spring", "nature"},
		Content:     "Cherry blossom season, or 'sakura', is one of the most celebrated times in Japan. The ephemeral beauty of the pink and white flowers represents the fleeting nature of life and is deeply embedded in Japanese culture and philosophy.",
	},
	{
		Title:       "Calligraphy Art",
		Description: "The elegant art of Japanese writing",
		ImageURL:    "https://images.unsplash.com/photo-1528825871115-3581a5387919?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryTraditionalArt,
		Tags:        []string{"calligraphy", "art", "writing"},
		Content:     "Japanese calligraphy, or 'shodo', is the artistic practice of writing characters with brush and ink. It requires years of practice to master the proper balance, rhythm, and flow of the brush strokes.",
	},
	{
		Title:       "Sushi Culture",
		Description: "Discover the art of Japanese cuisine",
		ImageURL:    "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryFoodCulture,
		Tags:        []string{"sushi", "food", "culture"},
		Content:     "Sushi is much more than just raw fish and rice. It's an art form that requires years of training to master. The preparation involves precise knife skills, understanding of fish quality, and perfect rice preparation.",
	},
	{
		Title:       "Mount Fuji",
		Description: "Japan's iconic sacred mountain",
		ImageURL:    "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryLandmarks,
		Tags:        []string{"fuji", "mountain", "landmark"},
		Content:     "Mount Fuji is Japan's tallest mountain and most enduring symbol. This active volcano has been worshipped as a sacred mountain and serves as a popular subject for artists and poets.",
	},
	{
		Title:       "Zen Gardens",
		Description: "Peaceful meditation spaces in Japanese culture",
		ImageURL:    "https://images.unsplash.com/photo-1528164344705-47542687000d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryTraditionalArt,
		Tags:        []string{"zen", "garden", "meditation"},
		Content:     "Japanese zen gardens, or 'karesansui', are designed to facilitate meditation. These minimalist landscapes use rocks, gravel, moss, and pruned trees to create peaceful spaces for contemplation.",
	},
	{
		Title:       "Origami Art",
		Description: "The ancient art of paper folding",
		ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryTraditionalArt,
		Tags:        []string{"origami", "paper", "art"},
		Content:     "Origami is the Japanese art of paper folding. The goal is to transform a flat square sheet of paper into a finished sculpture through folding and sculpting techniques, without using cuts or glue.",
	},
	{
		Title:       "Tokyo Lights",
		Description: "Modern Japan's vibrant city culture",
		ImageURL:    "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:    domain.CultureCategoryLandmarks,
		Tags:        []string{"tokyo", "modern", "city"},
		Content:     "Tokyo represents the modern face of Japan, where traditional culture meets cutting-edge technology. The city's neon-lit streets, especially in areas like Shibuya and Shinjuku, showcase Japan's contemporary urban culture.",
	},
}
