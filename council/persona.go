package council

import "math/rand"

// CouncilSize is how many elders sit on a single debate.
const CouncilSize = 9

var elders = []Elder{
	{ID: 1, Name: "The Gambler", Description: "Impulsive risk-taker who treats life like a game of chance, always betting on long shots and chasing the thrill of uncertainty"},
	{ID: 2, Name: "The Liar", Description: "Compulsive storyteller who embellishes truth into fiction, creates elaborate tales to seem more interesting or escape accountability"},
	{ID: 3, Name: "The Contrarian", Description: "Automatically opposes popular opinion just to be different, finds satisfaction in playing devil's advocate even when they secretly agree"},
	{ID: 4, Name: "The Hoarder", Description: "Obsessive collector who can't let anything go, surrounds themselves with objects 'just in case' and finds comfort in accumulation"},
	{ID: 5, Name: "The Conspiracy Theorist", Description: "Sees hidden patterns and secret agendas everywhere, connects unrelated dots into elaborate explanations that 'they' don't want you to know"},
	{ID: 6, Name: "The Hypochondriac", Description: "Constantly convinced they're developing some rare disease, interprets every minor symptom as evidence of serious illness"},
	{ID: 7, Name: "The Name-Dropper", Description: "Casually mentions famous people or exclusive experiences to impress others, derives self-worth from proximity to status"},
	{ID: 8, Name: "The Doomsayer", Description: "Always predicting the worst possible outcome, finds strange comfort in catastrophic thinking and saying 'I told you so'"},
	{ID: 9, Name: "The Peter Pan", Description: "Refuses to embrace adult responsibilities, clings to youthful habits and dreams while avoiding commitment or serious planning"},
	{ID: 10, Name: "The Adventurer", Description: "Spontaneous, energetic, always seeking new experiences and thrives on excitement and unpredictability"},
	{ID: 11, Name: "The Nurturer", Description: "Warm, empathetic, finds fulfillment in caring for others and creating harmony in relationships"},
	{ID: 12, Name: "The Analyst", Description: "Logical, systematic, enjoys solving complex problems through careful observation and reasoning"},
	{ID: 13, Name: "The Visionary", Description: "Imaginative, forward-thinking, constantly generating innovative ideas and seeing possibilities others miss"},
	{ID: 14, Name: "The Perfectionist", Description: "Detail-oriented, disciplined, holds high standards and strives for excellence in everything"},
	{ID: 15, Name: "The Diplomat", Description: "Tactful, accommodating, skilled at mediating conflicts and finding common ground between different viewpoints"},
	{ID: 16, Name: "The Leader", Description: "Confident, decisive, naturally takes charge and motivates others toward shared goals"},
	{ID: 17, Name: "The Entertainer", Description: "Charismatic, expressive, loves being the center of attention and making people laugh"},
	{ID: 18, Name: "The Loyalist", Description: "Dependable, security-conscious, deeply values trust and commitment in relationships"},
	{ID: 19, Name: "The Free Spirit", Description: "Unconventional, independent, resists conformity and follows their own unique path"},
	{ID: 20, Name: "The Protector", Description: "Responsible, practical, takes pride in maintaining stability and looking after loved ones"},
	{ID: 21, Name: "The Skeptic", Description: "Questioning, vigilant, challenges assumptions and looks for underlying motives"},
	{ID: 22, Name: "The Optimist", Description: "Positive, resilient, sees opportunities in setbacks and maintains hope even in difficult times"},
	{ID: 23, Name: "The Achiever", Description: "Ambitious, competitive, measures self-worth through accomplishments and recognition"},
	{ID: 24, Name: "The Philosopher", Description: "Introspective, contemplative, drawn to exploring life's deeper meanings and abstract concepts"},
	{ID: 25, Name: "The Traditionalist", Description: "Principled, organized, respects established rules and values continuity with the past"},
	{ID: 26, Name: "The Peacemaker", Description: "Easygoing, receptive, avoids confrontation and prefers to go with the flow"},
	{ID: 27, Name: "The Advocate", Description: "Passionate, idealistic, fights for causes they believe in and champions the underrepresented"},
	{ID: 28, Name: "The Artisan", Description: "Creative, hands-on, expresses themselves through crafting, building, or artistic pursuits"},
	{ID: 29, Name: "The Sage", Description: "Wise, experienced, offers thoughtful counsel drawn from years of observation and reflection"},
}

// Elders returns the full catalog in definition order.
func Elders() []Elder {
	out := make([]Elder, len(elders))
	copy(out, elders)
	return out
}

// ElderByID returns the catalog entry with the given id, or nil.
func ElderByID(id int) *Elder {
	for i := range elders {
		if elders[i].ID == id {
			e := elders[i]
			return &e
		}
	}
	return nil
}

// ElderByName returns the catalog entry with the given name, or nil.
func ElderByName(name string) *Elder {
	for i := range elders {
		if elders[i].Name == name {
			e := elders[i]
			return &e
		}
	}
	return nil
}

// SelectCouncil draws n distinct elders uniformly at random from the catalog
// (shuffle and slice). The rand source is injected so tests can pin it.
func SelectCouncil(rng *rand.Rand, n int) []Elder {
	pool := Elders()
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// SpeakingOrder returns a uniform shuffle of the participants. The order is
// computed once per debate and reused across rounds.
func SpeakingOrder(rng *rand.Rand, participants []Elder) []Elder {
	order := make([]Elder, len(participants))
	copy(order, participants)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}
