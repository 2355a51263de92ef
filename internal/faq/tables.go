package faq

// tables is the static FAQ content, one ordered slice per locale. Order is
// what the widget displays, so keep related questions adjacent.
var tables = map[string][]Entry{
	"en": {
		{
			Question: "What exactly does a destination management company do?",
			Answer:   "We are your local partner on the ground: venue sourcing, hotel contracting, transport, activities, staffing and on-site coordination for corporate events across Morocco. You deal with one team instead of twenty suppliers.",
			Category: CategoryGeneral,
		},
		{
			Question: "Which destinations do you cover?",
			Answer:   "Marrakech, Casablanca, Agadir, Fes, Rabat, Essaouira and the Ouarzazate desert region. Multi-city programs combining two or three destinations are common.",
			Category: CategoryGeneral,
		},
		{
			Question: "How far in advance should we book?",
			Answer:   "For groups above 80 guests we recommend four to six months, mainly to secure hotel allotments in high season (March–May and September–November). Smaller groups can often be arranged within six to eight weeks.",
			Category: CategoryPlanning,
		},
		{
			Question: "Can you work with our internal event agency?",
			Answer:   "Yes, most of our programs are built together with the client's agency or in-house events team. We handle the local layer; creative direction stays wherever you want it.",
			Category: CategoryPlanning,
		},
		{
			Question: "What does a typical budget per person look like?",
			Answer:   "A three-day incentive including four-star accommodation, transfers, two activities and a gala evening usually lands between 500€ and 800€ per person, excluding flights. We build proposals to the budget bracket you give us.",
			Category: CategoryPlanning,
		},
		{
			Question: "How do airport transfers and on-site transport work?",
			Answer:   "We operate licensed coaches and minivans with English- and French-speaking drivers, coordinated by our logistics desk. Arrival manifests are tracked flight by flight, including delays.",
			Category: CategoryLogistics,
		},
		{
			Question: "Do our guests need visas for Morocco?",
			Answer:   "Citizens of the EU, UK, US and Canada do not need a visa for stays under 90 days. For other nationalities we provide invitation letters and guidance as part of the program.",
			Category: CategoryLogistics,
		},
		{
			Question: "Can you handle dietary requirements and accessibility needs?",
			Answer:   "Yes. Halal, kosher, vegetarian and allergen-free catering are routine, and we pre-audit venues for step-free access when a group requires it. Mention the details in the special-requirements step of the proposal form.",
			Category: CategoryLogistics,
		},
	},
	"fr": {
		{
			Question: "Que fait exactement une agence réceptive (DMC) ?",
			Answer:   "Nous sommes votre partenaire local : recherche de lieux, contrats hôteliers, transport, activités, personnel et coordination sur place pour vos événements d'entreprise au Maroc. Un seul interlocuteur au lieu de vingt prestataires.",
			Category: CategoryGeneral,
		},
		{
			Question: "Quelles destinations couvrez-vous ?",
			Answer:   "Marrakech, Casablanca, Agadir, Fès, Rabat, Essaouira et la région désertique de Ouarzazate. Les programmes combinant deux ou trois destinations sont fréquents.",
			Category: CategoryGeneral,
		},
		{
			Question: "Combien de temps à l'avance faut-il réserver ?",
			Answer:   "Pour les groupes de plus de 80 personnes, comptez quatre à six mois, surtout pour garantir les allotements hôteliers en haute saison (mars–mai et septembre–novembre). Les petits groupes s'organisent souvent en six à huit semaines.",
			Category: CategoryPlanning,
		},
		{
			Question: "Pouvez-vous travailler avec notre agence événementielle ?",
			Answer:   "Oui, la plupart de nos programmes sont construits avec l'agence du client ou son équipe événementielle interne. Nous gérons la partie locale ; la direction créative reste où vous le souhaitez.",
			Category: CategoryPlanning,
		},
		{
			Question: "À quoi ressemble un budget type par personne ?",
			Answer:   "Un incentive de trois jours avec hébergement quatre étoiles, transferts, deux activités et une soirée de gala se situe généralement entre 500€ et 800€ par personne, hors vols. Nos propositions sont construites selon la fourchette que vous indiquez.",
			Category: CategoryPlanning,
		},
		{
			Question: "Comment fonctionnent les transferts et le transport sur place ?",
			Answer:   "Nous opérons des autocars et minivans licenciés avec chauffeurs francophones et anglophones, coordonnés par notre cellule logistique. Les arrivées sont suivies vol par vol, retards compris.",
			Category: CategoryLogistics,
		},
		{
			Question: "Nos invités ont-ils besoin d'un visa pour le Maroc ?",
			Answer:   "Les ressortissants de l'UE, du Royaume-Uni, des États-Unis et du Canada n'ont pas besoin de visa pour un séjour de moins de 90 jours. Pour les autres nationalités, nous fournissons lettres d'invitation et accompagnement.",
			Category: CategoryLogistics,
		},
		{
			Question: "Gérez-vous les régimes alimentaires et l'accessibilité ?",
			Answer:   "Oui. Les options halal, casher, végétariennes et sans allergènes sont courantes, et nous auditons les lieux pour l'accès sans marches quand un groupe le nécessite. Précisez ces besoins à l'étape des demandes particulières.",
			Category: CategoryLogistics,
		},
	},
}
