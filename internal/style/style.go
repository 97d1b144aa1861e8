// Package style maps tone, audience, and length settings to the instruction
// fragments injected into generation prompts. Style controls prompt wording
// only, never pipeline control flow.
package style

// Tone controls the writing voice of generated prose.
type Tone string

// Audience controls whom the prose is written for.
type Audience string

// Length controls target article size.
type Length string

// Known tone values
const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneTechnical     Tone = "technical"
	ToneFriendly      Tone = "friendly"
	ToneAuthoritative Tone = "authoritative"
)

// Known audience values
const (
	AudienceDevelopers Audience = "developers"
	AudienceExecutives Audience = "executives"
	AudienceGeneral    Audience = "general"
	AudienceBeginners  Audience = "beginners"
)

// Known length values
const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Config is the tone/audience/length triple for one pipeline run.
type Config struct {
	Tone     Tone
	Audience Audience
	Length   Length
}

// DefaultConfig returns the professional/developers/medium defaults.
func DefaultConfig() Config {
	return Config{
		Tone:     ToneProfessional,
		Audience: AudienceDevelopers,
		Length:   LengthMedium,
	}
}

// Instructions are the resolved prompt fragments for a Config.
type Instructions struct {
	Tone     string
	Audience string
	Length   string
}

var toneInstructions = map[Tone]string{
	ToneProfessional:  "Write in a polished, professional voice. Stay precise and avoid slang.",
	ToneCasual:        "Write in a relaxed, conversational voice, as if explaining to a colleague over coffee.",
	ToneTechnical:     "Write in a rigorous technical voice. Use correct terminology and concrete detail.",
	ToneFriendly:      "Write in a warm, encouraging voice that puts the reader at ease.",
	ToneAuthoritative: "Write in a confident, authoritative voice backed by clear reasoning.",
}

var audienceInstructions = map[Audience]string{
	AudienceDevelopers: "The readers are software developers. Assume programming literacy; examples and specifics land well.",
	AudienceExecutives: "The readers are executives. Lead with outcomes and business impact; keep technical depth minimal.",
	AudienceGeneral:    "The readers are a general audience. Avoid jargon and explain concepts from first principles where needed.",
	AudienceBeginners:  "The readers are beginners to this topic. Define terms on first use and build up gradually.",
}

var lengthInstructions = map[Length]string{
	LengthShort:  "Keep each section brief: two to three focused paragraphs.",
	LengthMedium: "Write each section at moderate depth: three to five paragraphs.",
	LengthLong:   "Write each section in depth: five or more paragraphs with examples.",
}

// Resolve looks up the instruction fragment for each enum value
// independently. Unknown values fall back silently to the default entry;
// permissive resolution here is deliberate, a bad style value must never
// fail a run.
func Resolve(cfg Config) Instructions {
	return Instructions{
		Tone:     lookup(toneInstructions, cfg.Tone, ToneProfessional),
		Audience: lookup(audienceInstructions, cfg.Audience, AudienceDevelopers),
		Length:   lookup(lengthInstructions, cfg.Length, LengthMedium),
	}
}

func lookup[K comparable](table map[K]string, key, fallback K) string {
	if text, ok := table[key]; ok {
		return text
	}
	return table[fallback]
}

// SectionTarget returns the outline section-count hint for a length.
func SectionTarget(l Length) int {
	switch l {
	case LengthShort:
		return 4
	case LengthLong:
		return 8
	default:
		return 6
	}
}

// MaxOutputTokens returns the per-section generation token budget for a
// length.
func MaxOutputTokens(l Length) int32 {
	switch l {
	case LengthShort:
		return 1024
	case LengthLong:
		return 4096
	default:
		return 2048
	}
}
