package prompt

import "github.com/speakgenie/genie-support/internal/core"

// Tone and language branching is table-driven so a new locale or audience is
// a data change, not a code change.

var toneClauses = map[string]string{
	core.UserParent: "Use a polite, professional, and empathetic tone. Address concerns about child safety, learning progress, and value for money.",
	core.UserKid:    "Use simple, friendly language with fun emojis. Make explanations easy to understand and engaging for children.",
}

const toneFallback = "Use a friendly, helpful tone appropriate for the context."

var languageClauses = map[string]string{
	"hindi":      "Respond in Hindi (हिंदी). Use Devanagari script for Hindi text. Keep responses natural and conversational in Hindi.",
	"hinglish":   `Respond in Hinglish (mix of Hindi and English). Use both Hindi and English words naturally. Example: "Aap ka question bahut good hai!"`,
	"bengali":    "Respond in Bengali (বাংলা). Use Bengali script for Bengali text. Keep responses natural and conversational in Bengali.",
	"telugu":     "Respond in Telugu (తెలుగు). Use Telugu script for Telugu text. Keep responses natural and conversational in Telugu.",
	"marathi":    "Respond in Marathi (मराठी). Use Devanagari script for Marathi text. Keep responses natural and conversational in Marathi.",
	"tamil":      "Respond in Tamil (தமிழ்). Use Tamil script for Tamil text. Keep responses natural and conversational in Tamil.",
	"gujarati":   "Respond in Gujarati (ગુજરાતી). Use Gujarati script for Gujarati text. Keep responses natural and conversational in Gujarati.",
	"kannada":    "Respond in Kannada (ಕನ್ನಡ). Use Kannada script for Kannada text. Keep responses natural and conversational in Kannada.",
	"malayalam":  "Respond in Malayalam (മലയാളം). Use Malayalam script for Malayalam text. Keep responses natural and conversational in Malayalam.",
	"punjabi":    "Respond in Punjabi (ਪੰਜਾਬੀ). Use Gurmukhi script for Punjabi text. Keep responses natural and conversational in Punjabi.",
	"odia":       "Respond in Odia (ଓଡ଼ିଆ). Use Odia script for Odia text. Keep responses natural and conversational in Odia.",
	"assamese":   "Respond in Assamese (অসমীয়া). Use Assamese script for Assamese text. Keep responses natural and conversational in Assamese.",
	"bhojpuri":   "Respond in Bhojpuri (भोजपुरी). Use Devanagari script for Bhojpuri text. Keep responses natural and conversational in Bhojpuri.",
	"rajasthani": "Respond in Rajasthani (राजस्थानी). Use Devanagari script for Rajasthani text. Keep responses natural and conversational in Rajasthani.",
}

const languageFallback = "Respond in English. Use clear, professional English language."

var escalationTemplates = map[string]string{
	"english":  "I've escalated your query to our human support team. They will contact you within 24 hours at hello@speakgenie.com. Is there anything else I can help you with in the meantime?",
	"hindi":    "मैंने आपका प्रश्न हमारी मानव सहायता टीम को भेज दिया है। वे 24 घंटे के भीतर hello@speakgenie.com पर आपसे संपर्क करेंगे। क्या इस बीच मैं आपकी किसी और चीज़ में मदद कर सकता हूँ?",
	"hinglish": "Maine aapka query humari human support team ko forward kar diya hai. Wo 24 hours ke andar hello@speakgenie.com par aapse contact karenge. Tab tak kya main kisi aur cheez mein help kar sakta hoon?",
}

// ToneClause returns the behavioral framing for a profile type.
func ToneClause(userType string) string {
	if clause, ok := toneClauses[userType]; ok {
		return clause
	}
	return toneFallback
}

// LanguageClause returns the output-language instruction for a locale tag.
// Unknown tags and "english" get the plain-English instruction.
func LanguageClause(language string) string {
	if clause, ok := languageClauses[language]; ok {
		return clause
	}
	return languageFallback
}

// EscalationMessage returns the localized human-escalation confirmation.
func EscalationMessage(language string) string {
	if tmpl, ok := escalationTemplates[language]; ok {
		return tmpl
	}
	return escalationTemplates["english"]
}
