package messaging

import "github.com/smartwork/dashboard/internal/entities"

var emailTemplates = []entities.MessageTemplate{
	{
		ID: 1, Channel: entities.ChannelEmail, Name: "Confirmation RDV",
		Subject: "Confirmation de votre rendez-vous",
		Content: "Bonjour {{nom}},\n\nNous confirmons votre rendez-vous prévu le {{date}} à {{heure}}.\n\nCordialement,\nL'équipe SmartWork",
	},
	{
		ID: 2, Channel: entities.ChannelEmail, Name: "Relance facture",
		Subject: "Rappel - Facture en attente",
		Content: "Bonjour {{nom}},\n\nNous vous rappelons que la facture n°{{facture}} reste en attente de règlement.\n\nCordialement",
	},
	{
		ID: 3, Channel: entities.ChannelEmail, Name: "Bienvenue",
		Subject: "Bienvenue chez nous !",
		Content: "Bonjour {{nom}},\n\nNous sommes ravis de vous compter parmi nos clients.\n\nN'hésitez pas à nous contacter pour toute question.\n\nCordialement",
	},
}

var whatsappTemplates = []entities.MessageTemplate{
	{ID: 4, Channel: entities.ChannelWhatsApp, Name: "Rappel RDV", Content: "Bonjour ! Rappel pour votre RDV demain à {{heure}}. À bientôt !"},
	{ID: 5, Channel: entities.ChannelWhatsApp, Name: "Commande prête", Content: "Bonjour ! Votre commande est prête. Passez la récupérer quand vous voulez."},
	{ID: 6, Channel: entities.ChannelWhatsApp, Name: "Suivi client", Content: "Bonjour {{nom}} ! Comment allez-vous ? Avez-vous des questions sur nos services ?"},
}

// Templates returns the built-in templates of a channel, or of every channel
// when channel is empty.
func Templates(channel entities.Channel) []entities.MessageTemplate {
	switch channel {
	case entities.ChannelEmail:
		return append([]entities.MessageTemplate(nil), emailTemplates...)
	case entities.ChannelWhatsApp:
		return append([]entities.MessageTemplate(nil), whatsappTemplates...)
	}
	all := make([]entities.MessageTemplate, 0, len(emailTemplates)+len(whatsappTemplates))
	all = append(all, emailTemplates...)
	return append(all, whatsappTemplates...)
}

// Template looks up a built-in template by id.
func Template(id int) (entities.MessageTemplate, bool) {
	for _, t := range Templates("") {
		if t.ID == id {
			return t, true
		}
	}
	return entities.MessageTemplate{}, false
}
