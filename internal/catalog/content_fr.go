package catalog

var localeFR = &Locale{
	Code: "fr",

	Greeting:           "Bonjour ! Je suis l'assistant Atlas DMC. Je peux préparer une proposition d'événement sur mesure en moins de deux minutes, ou répondre aux questions fréquentes sur l'organisation d'événements au Maroc.",
	StartProposalLabel: "Demander une proposition",
	BrowseFAQLabel:     "Consulter la FAQ",

	Prompts: map[StepKey]string{
		StepEventType:    "Parfait ! Quel type d'événement préparez-vous ? Sélectionnez tout ce qui s'applique.",
		StepCity:         "Quelles destinations envisagez-vous ?",
		StepGroupSize:    "Combien de participants attendez-vous ?",
		StepDates:        "À quelle période l'événement aurait-il lieu ? Un mois ou une période approximative suffit.",
		StepBudget:       "Quel budget par personne avez-vous en tête ?",
		StepContact:      "Presque terminé. À qui adressons-nous la proposition ?",
		StepSpecialNeeds: "Des besoins particuliers à signaler ? Régimes alimentaires, accessibilité, matériel technique...",
		StepConsent:      "Dernière étape : nous avons besoin de votre consentement pour traiter ces informations et vous envoyer la proposition.",
	},

	Options: map[StepKey][]Option{
		StepEventType: {
			{ID: "conference", Label: "Conférence"},
			{ID: "incentive", Label: "Voyage incentive"},
			{ID: "team-building", Label: "Team building"},
			{ID: "gala-dinner", Label: "Dîner de gala"},
			{ID: "product-launch", Label: "Lancement de produit"},
			{ID: "seminar", Label: "Séminaire"},
		},
		StepCity: {
			{ID: "marrakech", Label: "Marrakech"},
			{ID: "casablanca", Label: "Casablanca"},
			{ID: "agadir", Label: "Agadir"},
			{ID: "fes", Label: "Fès"},
			{ID: "rabat", Label: "Rabat"},
			{ID: "essaouira", Label: "Essaouira"},
			{ID: "ouarzazate", Label: "Ouarzazate"},
		},
		StepGroupSize: {
			{ID: "under-30", Label: "Moins de 30"},
			{ID: "30-80", Label: "30 à 80"},
			{ID: "80-200", Label: "80 à 200"},
			{ID: "over-200", Label: "Plus de 200"},
		},
		StepBudget: {
			{ID: "under-500", Label: "Moins de 500€"},
			{ID: "500-800", Label: "500–800€"},
			{ID: "800-1200", Label: "800–1 200€"},
			{ID: "over-1200", Label: "Plus de 1 200€"},
		},
	},

	Placeholders: map[StepKey]string{
		StepDates:        "ex. mars 2026, ou seconde quinzaine de mai",
		StepSpecialNeeds: "Laissez vide si rien ne vous vient",
	},

	ContactFields: []Option{
		{ID: "company", Label: "Société*"},
		{ID: "first_name", Label: "Prénom*"},
		{ID: "last_name", Label: "Nom*"},
		{ID: "email", Label: "Email professionnel*"},
		{ID: "phone", Label: "Téléphone (facultatif)"},
	},

	ContinueLabel:  "Continuer",
	FlexibleLabel:  "Nos dates sont flexibles",
	NoneSentinel:   "Aucun besoin particulier",
	ConsentLabel:   "J'accepte qu'Atlas DMC conserve et traite ces informations pour préparer ma proposition.",
	ConsentGranted: "Consentement donné — envoyer ma demande",

	InvalidEmail:   "Cette adresse email semble incorrecte — pouvez-vous la vérifier ?",
	EmptySelection: "Merci de choisir au moins une option pour que je puisse adapter la proposition.",
	RequiredFields: "Merci de renseigner votre soci\u00e9t\u00e9, votre nom et votre email pour recevoir la proposition.",
	AnswerRequired: "Merci de saisir une r\u00e9ponse avant de continuer.",

	SuccessTemplate:  "Merci ! Votre demande a bien été envoyée. Votre référence est %s — conservez-la, notre équipe vous recontacte sous un jour ouvré.",
	SubmissionFailed: "Désolé, l'envoi de votre demande a échoué. Rien n'est perdu — réessayez dans un instant.",

	HandoffIntro: "Vous préférez parler directement à un humain ?",
	HandoffChat:  "Continuer sur WhatsApp",
	HandoffEmail: "Nous écrire",
	HandoffPhone: "Nous appeler",

	HandoffTemplate: "Bonjour ! Je viens d'envoyer une demande d'événement (réf %s). Type d'événement : %s. Destinations : %s. Taille du groupe : %s. Dates : %s.",

	FAQIntro:     "Voici les questions qui reviennent le plus souvent. Filtrez par thème ou parcourez la liste.",
	FAQBackLabel: "Retour",
	FAQCategories: map[string]string{
		"all":       "Tous les thèmes",
		"general":   "Général",
		"planning":  "Organisation",
		"logistics": "Logistique",
	},
}
