// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Fields is a bag of record attributes keyed by the CMS field name.
type Fields map[string]any

// LocalePair declares one logical content item as its shared
// (locale-invariant) fields plus per-locale field sets. The RU variant
// is created first; the EN variant is attached to the same documentId.
type LocalePair struct {
	Shared Fields
	RU     Fields
	EN     Fields
}

// Merged returns shared fields overlaid with the given locale's fields.
func (p LocalePair) Merged(locale string) Fields {
	var localized Fields
	switch locale {
	case LocaleEN:
		localized = p.EN
	default:
		localized = p.RU
	}

	merged := make(Fields, len(p.Shared)+len(localized))
	for k, v := range p.Shared {
		merged[k] = v
	}
	for k, v := range localized {
		merged[k] = v
	}
	return merged
}

// SeedSpecification is the static table of content to create during
// bootstrap, one ordered list of locale pairs per content type.
type SeedSpecification struct {
	Communities  []LocalePair
	Projects     []LocalePair
	Settings     LocalePair
	Categories   []LocalePair
	Articles     []LocalePair
	RabbiQAs     []LocalePair
	Traditions   []LocalePair
	PosterEvents []LocalePair
}

// DefaultSeed returns the initial content set for an empty CMS instance.
// Data mirrors the public iro.by site.
func DefaultSeed() *SeedSpecification {
	return &SeedSpecification{
		Communities:  seedCommunities,
		Projects:     seedProjects,
		Settings:     seedSettings,
		Categories:   seedCategories,
		Articles:     seedArticles,
		RabbiQAs:     seedRabbiQAs,
		Traditions:   seedTraditions,
		PosterEvents: seedPosterEvents,
	}
}

var seedCommunities = []LocalePair{
	{
		Shared: Fields{
			"slug":        "minsk",
			"order":       1,
			"coordinates": Coordinates{Lat: 53.9045, Lng: 27.5615},
			"phone":       "+375 (44) 555-06-83",
			"email":       "iro13b@gmail.com",
		},
		RU: Fields{
			"name":           "Минск",
			"community_name": "Иудейское религиозное объединение в Республике Беларусь",
			"description":    "Центральная община и офис ИРО в Минске",
			"address":        "220002, г. Минск, ул. Даумана, 13Б",
		},
		EN: Fields{
			"name":           "Minsk",
			"community_name": "Jewish Religious Union in the Republic of Belarus",
			"description":    "Central community and IRO office in Minsk",
			"address":        "13B Daumana St., Minsk, 220002",
		},
	},
	{
		Shared: Fields{
			"slug":        "brest",
			"order":       2,
			"coordinates": Coordinates{Lat: 52.0975, Lng: 23.734},
		},
		RU: Fields{
			"name":           "Брест",
			"community_name": "Брестская еврейская община",
			"description":    "Место строительства первого Лапидария в Беларуси",
			"address":        "г. Брест",
		},
		EN: Fields{
			"name":           "Brest",
			"community_name": "Brest Jewish community",
			"description":    "Site of the first Lapidarium being built in Belarus",
			"address":        "Brest",
		},
	},
	{
		Shared: Fields{
			"slug":        "gomel",
			"order":       3,
			"coordinates": Coordinates{Lat: 52.4345, Lng: 30.9754},
		},
		RU: Fields{
			"name":           "Гомель",
			"community_name": "Гомельская еврейская община",
			"description":    "Одна из крупнейших общин Беларуси",
			"address":        "г. Гомель",
		},
		EN: Fields{
			"name":           "Gomel",
			"community_name": "Gomel Jewish community",
			"description":    "One of the largest communities in Belarus",
			"address":        "Gomel",
		},
	},
	{
		Shared: Fields{
			"slug":        "bobruysk",
			"order":       4,
			"coordinates": Coordinates{Lat: 53.1393, Lng: 29.2214},
		},
		RU: Fields{
			"name":           "Бобруйск",
			"community_name": "Бобруйская еврейская община",
			"description":    "Историческая община в Могилёвской области",
			"address":        "г. Бобруйск",
		},
		EN: Fields{
			"name":           "Bobruysk",
			"community_name": "Bobruysk Jewish community",
			"description":    "Historic community in the Mogilev region",
			"address":        "Bobruysk",
		},
	},
	{
		Shared: Fields{
			"slug":        "mogilev",
			"order":       5,
			"coordinates": Coordinates{Lat: 53.8978, Lng: 30.3331},
		},
		RU: Fields{
			"name":           "Могилев",
			"community_name": "Могилевская еврейская община",
			"description":    "Восточная община Беларуси",
			"address":        "г. Могилев",
		},
		EN: Fields{
			"name":           "Mogilev",
			"community_name": "Mogilev Jewish community",
			"description":    "Eastern community of Belarus",
			"address":        "Mogilev",
		},
	},
}

var seedProjects = []LocalePair{
	{
		Shared: Fields{"slug": "support-communities", "icon": "Users", "order": 1},
		RU: Fields{
			"title":       "Поддержка общин",
			"description": "Поддержка 15 еврейских общин по всей Беларуси",
			"content":     "ИРО поддерживает 15 еврейских общин по всей Беларуси, реализуя совместные проекты и укрепляя связи между общинами.",
		},
		EN: Fields{
			"title":       "Community Support",
			"description": "Supporting 15 Jewish communities across Belarus",
			"content":     "IRO supports 15 Jewish communities throughout Belarus, implementing joint projects and strengthening connections between communities.",
		},
	},
	{
		Shared: Fields{"slug": "humanitarian-aid", "icon": "Heart", "order": 2},
		RU: Fields{
			"title":       "Гуманитарная помощь",
			"description": "Помощь нуждающимся членам общины",
			"content":     "Ежегодно оказываем гуманитарную помощь еврейскому населению, многодетным семьям и людям с ограниченными возможностями.",
		},
		EN: Fields{
			"title":       "Humanitarian Aid",
			"description": "Assistance to community members in need",
			"content":     "We annually provide humanitarian assistance to the Jewish population, large families, and people with disabilities.",
		},
	},
	{
		Shared: Fields{"slug": "berega-newspaper", "icon": "Newspaper", "order": 3},
		RU: Fields{
			"title":       "Газета «Берега»",
			"description": "Единственное еврейское СМИ в Беларуси",
			"content":     "Выпускаем единственное еврейское СМИ в Беларуси — газету «Берега», а также книги о еврейском наследии Беларуси.",
		},
		EN: Fields{
			"title":       "Berega Newspaper",
			"description": "The only Jewish media in Belarus",
			"content":     "We publish the only Jewish media in Belarus — Berega newspaper, as well as books about the Jewish heritage of Belarus.",
		},
	},
	{
		Shared: Fields{"slug": "lapidarium-brest", "icon": "Landmark", "order": 4},
		RU: Fields{
			"title":       "Лапидарий в Бресте",
			"description": "Возрождение еврейской истории Беларуси",
			"content":     "Возрождаем еврейскую историю Беларуси: строим первый Лапидарий в Беларуси (г. Брест), устанавливаем мемориальные знаки, открываем Аллеи памяти.",
		},
		EN: Fields{
			"title":       "Lapidarium in Brest",
			"description": "Reviving the Jewish history of Belarus",
			"content":     "We are reviving the Jewish history of Belarus: building the first Lapidarium in Belarus (Brest), installing memorial signs, opening Memory Alleys.",
		},
	},
	{
		Shared: Fields{"slug": "audio-video-tours", "icon": "Video", "order": 5},
		RU: Fields{
			"title":       "Аудио и видеотуры",
			"description": "Туры по местам еврейского наследия",
			"content":     "Создаем аудио- и видеотуры по местам еврейского наследия Беларуси.",
		},
		EN: Fields{
			"title":       "Audio and Video Tours",
			"description": "Tours of Jewish heritage sites",
			"content":     "We create audio and video tours of Jewish heritage sites in Belarus.",
		},
	},
	{
		Shared: Fields{"slug": "cultural-events", "icon": "Calendar", "order": 6},
		RU: Fields{
			"title":       "Культурные мероприятия",
			"description": "Шаббаты, клубы, конференции",
			"content":     "Проводим совместные шаббаты, клубы еврейского наследия, тематические конференции, выставки и семинары.",
		},
		EN: Fields{
			"title":       "Cultural Events",
			"description": "Shabbats, clubs, conferences",
			"content":     "We organize joint Shabbats, Jewish heritage clubs, thematic conferences, exhibitions, and seminars.",
		},
	},
}

var seedSettings = LocalePair{
	Shared: Fields{
		"contact_email": "iro13b@gmail.com",
		"contact_phone": "+375 (44) 555-06-83",
	},
	RU: Fields{
		"site_name":               "Иудейское Религиозное Объединение в Республике Беларусь",
		"site_description":        "Официальный сайт ИРО в РБ",
		"hero_title":              "Добро пожаловать на официальный сайт ИРО в РБ!",
		"hero_subtitle":           "Мы являемся центром иудейской общины, продолжая традиции нашего народа и вносим свой вклад в многокультурное наследие Беларуси.",
		"communities_title":       "Наши общины",
		"communities_description": "Еврейские общины по всей Беларуси",
		"projects_title":          "Наши проекты",
		"projects_description":    "Программы и инициативы ИРО",
	},
	EN: Fields{
		"site_name":               "Jewish Religious Union in the Republic of Belarus",
		"site_description":        "Official website of the IRO in Belarus",
		"hero_title":              "Welcome to the official IRO website!",
		"hero_subtitle":           "We are the center of the Jewish community, continuing the traditions of our people and contributing to the multicultural heritage of Belarus.",
		"communities_title":       "Our communities",
		"communities_description": "Jewish communities across Belarus",
		"projects_title":          "Our projects",
		"projects_description":    "IRO programs and initiatives",
	},
}

var seedCategories = []LocalePair{
	{
		Shared: Fields{"slug": "news"},
		RU:     Fields{"name": "Новости"},
		EN:     Fields{"name": "News"},
	},
	{
		Shared: Fields{"slug": "heritage"},
		RU:     Fields{"name": "Наследие"},
		EN:     Fields{"name": "Heritage"},
	},
	{
		Shared: Fields{"slug": "community-life"},
		RU:     Fields{"name": "Жизнь общин"},
		EN:     Fields{"name": "Community life"},
	},
}

var seedArticles = []LocalePair{
	{
		Shared: Fields{"slug": "lapidarium-opening", "author": "Редакция «Берега»"},
		RU: Fields{
			"title":   "Лапидарий в Бресте: начало работ",
			"excerpt": "В Бресте началось строительство первого в Беларуси Лапидария.",
			"content": "В Бресте началось строительство первого в Беларуси **Лапидария** — мемориала из сохранившихся еврейских надгробий.\n\nПроект реализуется при поддержке общин всей страны.",
		},
		EN: Fields{
			"title":   "Lapidarium in Brest: work begins",
			"excerpt": "Construction of the first Lapidarium in Belarus has started in Brest.",
			"content": "Construction of the first **Lapidarium** in Belarus — a memorial built from surviving Jewish gravestones — has started in Brest.\n\nThe project is carried out with the support of communities across the country.",
		},
	},
	{
		Shared: Fields{"slug": "berega-new-issue", "author": "Редакция «Берега»"},
		RU: Fields{
			"title":   "Вышел новый номер газеты «Берега»",
			"excerpt": "Свежий выпуск единственного еврейского СМИ Беларуси.",
			"content": "Вышел новый номер газеты «Берега». В выпуске: новости общин, история еврейских местечек и анонсы ближайших мероприятий.",
		},
		EN: Fields{
			"title":   "New issue of Berega newspaper",
			"excerpt": "A fresh issue of the only Jewish media in Belarus.",
			"content": "A new issue of Berega newspaper is out. Inside: community news, the history of Jewish shtetls, and announcements of upcoming events.",
		},
	},
}

var seedRabbiQAs = []LocalePair{
	{
		Shared: Fields{"order": 1, "rabbi_name": "Раввин общины"},
		RU: Fields{
			"question": "Как зажигают субботние свечи?",
			"answer":   "Свечи зажигают до захода солнца в пятницу, произнося благословение. Время зажигания публикуется на сайте для каждого города.",
		},
		EN: Fields{
			"question": "How are Shabbat candles lit?",
			"answer":   "Candles are lit before sunset on Friday with a blessing. Lighting times are published on the site for every city.",
		},
	},
	{
		Shared: Fields{"order": 2, "rabbi_name": "Раввин общины"},
		RU: Fields{
			"question": "Что такое кашрут?",
			"answer":   "Кашрут — свод законов о пригодности пищи. Община помогает с информацией о кошерных продуктах, доступных в Беларуси.",
		},
		EN: Fields{
			"question": "What is kashrut?",
			"answer":   "Kashrut is the body of laws on permissible food. The community helps with information about kosher products available in Belarus.",
		},
	},
}

var seedTraditions = []LocalePair{
	{
		Shared: Fields{"order": 1, "related_holiday": "Shabbat"},
		RU: Fields{
			"title":       "Шаббат",
			"description": "Еженедельный день покоя от захода солнца в пятницу до появления звёзд в субботу.",
		},
		EN: Fields{
			"title":       "Shabbat",
			"description": "The weekly day of rest from sunset on Friday until the stars appear on Saturday.",
		},
	},
	{
		Shared: Fields{"order": 2, "related_holiday": "Pesach"},
		RU: Fields{
			"title":       "Песах",
			"description": "Праздник исхода из Египта; восемь дней без квасного хлеба.",
		},
		EN: Fields{
			"title":       "Pesach",
			"description": "The festival of the Exodus from Egypt; eight days without leavened bread.",
		},
	},
	{
		Shared: Fields{"order": 3, "related_holiday": "Hanukkah"},
		RU: Fields{
			"title":       "Ханука",
			"description": "Восьмидневный праздник света в память об освящении Храма.",
		},
		EN: Fields{
			"title":       "Hanukkah",
			"description": "The eight-day festival of lights commemorating the rededication of the Temple.",
		},
	},
}

var seedPosterEvents = []LocalePair{
	{
		Shared: Fields{"date": "2026-09-11T18:00:00.000Z"},
		RU: Fields{
			"title":       "Совместный шаббат",
			"location":    "Минск, ул. Даумана, 13Б",
			"description": "Встреча общин Минска: зажигание свечей, кидуш и совместная трапеза.",
		},
		EN: Fields{
			"title":       "Joint Shabbat",
			"location":    "13B Daumana St., Minsk",
			"description": "A gathering of Minsk communities: candle lighting, kiddush and a shared meal.",
		},
	},
	{
		Shared: Fields{"date": "2026-09-20T15:00:00.000Z"},
		RU: Fields{
			"title":       "Экскурсия по еврейскому Бресту",
			"location":    "Брест",
			"description": "Пешеходная экскурсия по местам еврейского наследия Бреста с посещением Лапидария.",
		},
		EN: Fields{
			"title":       "Jewish Brest walking tour",
			"location":    "Brest",
			"description": "A walking tour of Brest's Jewish heritage sites, including the Lapidarium.",
		},
	},
}
