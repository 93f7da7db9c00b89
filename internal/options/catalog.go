package options

// Built-in phrase catalogs. Entries are immutable; user additions live in the
// custom option store.

var interventionCatalog = []Option{
	// ACT
	{ID: "act-defusion-creative-engagement", Group: "ACT", Label: "Encouraged creative engagement with difficult thoughts using defusion tools."},
	{ID: "act-urges-willingness-choice", Group: "ACT", Label: "Practiced identifying urges and impulses without acting on them, reinforcing willingness and choice."},
	{ID: "act-review-refine-values-domains", Group: "ACT", Label: "Reviewed and refined values in multiple life domains to enhance clarity and direction."},
	{ID: "act-acceptance-internal-discomfort", Group: "ACT", Label: "Supported acceptance of internal discomfort as a means to foster action aligned with the client’s chosen path."},
	{ID: "act-metaphor-passengers-on-bus", Group: "ACT", Label: "Encouraged willingness by using metaphors (e.g., “Passengers on the Bus”) to reframe painful inner experiences."},
	{ID: "act-choice-point", Group: "ACT", Label: "Used the “choice point” model to illustrate moments of alignment with or deviation from values."},
	{ID: "act-barriers-to-committed-action", Group: "ACT", Label: "Processed barriers to values-based action and collaboratively developed steps for committed action."},
	{ID: "act-perspective-taking", Group: "ACT", Label: "Conducted perspective taking activity to build awareness and flexibility."},
	{ID: "act-explore-apply-values", Group: "ACT", Label: "Identified and explored values and ways the client does and can apply them meaningfully."},
	{ID: "act-creative-hopelessness", Group: "ACT", Label: "Conducted creative hopelessness activity to highlight benefits and costs of experiential avoidance."},
	{ID: "act-defusion-during-discomfort", Group: "ACT", Label: "Conducted defusion activity to support cognitive flexibility during uncomfortable thoughts."},
	// CBT
	{ID: "cbt-relationship-between-thoughts-feelings-actions", Group: "CBT", Label: "Identified thoughts, feelings and actions and explored the relationship between them."},
	{ID: "cbt-thinking-traps", Group: "CBT", Label: "Identified and reframed thinking traps."},
	{ID: "cbt-anxiety-cycle-maintaining-factors", Group: "CBT", Label: "Discussed anxiety cycle and explored factors and patterns maintaining client's anxiety."},
	{ID: "cbt-exposure-habituate-anxiety", Group: "CBT", Label: "Conducted exposure activity to habituate client's anxiety."},
	{ID: "cbt-behavioural-experiment", Group: "CBT", Label: "Planned behavioural experiment to support curious exploration of possibilities."},
	{ID: "cbt-behavioural-activation", Group: "CBT", Label: "Conducted behavioural activation activity to support meaningful engagement with positive experiences."},
	{ID: "cbt-interoceptive-exposure", Group: "CBT", Label: "Practiced interoceptive exposure to increase tolerance and flexibility in responding to bodily sensations."},
	{ID: "cbt-identify-emotion-driven-behaviours", Group: "CBT", Label: "Identified emotion-driven behaviors and explored alternative, values-congruent responses."},
	{ID: "cbt-cognitive-reappraisal", Group: "CBT", Label: "Practiced cognitive reappraisal strategies to challenge maladaptive appraisals and increase emotional flexibility."},
	{ID: "cbt-situational-exposure-post-reflection", Group: "CBT", Label: "Conducted situational exposure activity targeting emotional triggers and supported post-exposure reflection."},
	// General
	{ID: "gen-listened-empathy-validation", Group: "General", Label: "Listened actively, providing empathy and validation."},
	{ID: "gen-strengths-resilience-planning", Group: "General", Label: "Identified strengths and resilience factors and integrated them into ongoing conceptualization and planning."},
	{ID: "gen-generalization-planning-real-world", Group: "General", Label: "Supported generalization of skills through collaborative planning for real-world application of emotional coping strategies."},
	{ID: "gen-reflected-in-session-reactions", Group: "General", Label: "Reflected on client’s emotional reactions in-session to deepen awareness of meaningful elements and create openness to them."},
	{ID: "gen-validated-lived-experience", Group: "General", Label: "Validated client's lived experience and cultivated a nonjudgmental space to hold ambiguity and complexity."},
	{ID: "gen-authenticity-alignment-values", Group: "General", Label: "Encouraged reflection on authenticity and alignment with deeply held values and beliefs."},
	{ID: "gen-agency-responsibility-choice", Group: "General", Label: "Discussed the client's evolving sense of self in relation to agency, responsibility, and choice."},
	{ID: "gen-therapeutic-relationship-connection-rupture-repair", Group: "General", Label: "Used the therapeutic relationship as a space to explore patterns of connection, rupture, and repair."},
	{ID: "gen-congruence-incongruence-self-concept-actions", Group: "General", Label: "Highlighted moments of congruence and incongruence between client’s self-concept and actions."},
	{ID: "gen-empathic-confrontation", Group: "General", Label: "Used empathic confrontation to gently highlight discrepancies between stated goals and current behavior."},
	{ID: "gen-identify-emotional-blocks", Group: "General", Label: "Supported identification of emotional blocks that disrupt access to core affect and relational longings."},
	{ID: "gen-review-scope-goals-structure", Group: "General", Label: "Reviewed the scope, goals, and structure of therapy and invited client questions or clarifications."},
	{ID: "gen-confidentiality-limits", Group: "General", Label: "Revisited limits of confidentiality in response to client concerns or as clinically appropriate."},
	{ID: "gen-risks-benefits-alternatives", Group: "General", Label: "Discussed potential risks, benefits, and alternatives to proposed interventions or approaches."},
	{ID: "gen-cancellations-emergencies-after-hours", Group: "General", Label: "Reviewed procedures for session cancellations, emergencies, and after-hours."},
	{ID: "gen-roles-boundaries-scope-of-practice", Group: "General", Label: "Clarified therapist roles, boundaries, and scope of practice in response to client queries or changing needs."},
	{ID: "gen-acknowledged-emotional-impact-supported", Group: "General", Label: "Acknowledged and discussed the emotional impact of therapeutic content and ensured client felt supported in proceeding."},
	// DBT
	{ID: "dbt-emotion-regulation-strategies", Group: "DBT", Label: "Reviewed emotion regulation strategies (e.g., opposite action, behavioral activation) to support adaptive coping."},
	{ID: "dbt-mindfulness-what-how", Group: "DBT", Label: "Taught and reviewed mindfulness “What” and “How” skills to enhance awareness and reduce reactivity."},
	{ID: "dbt-distress-tolerance-tools", Group: "DBT", Label: "Facilitated application of distress tolerance tools (e.g., ACCEPTS, self-soothe, TIP skills) during emotional crises."},
	{ID: "dbt-emotional-vulnerability-factors", Group: "DBT", Label: "Reviewed emotional vulnerability factors and introduced emotion regulation strategies for proactive coping."},
	{ID: "dbt-interpersonal-effectiveness-assertive-roleplay", Group: "DBT", Label: "Explored interpersonal effectiveness skills and practiced assertive communication in role-play."},
	{ID: "dbt-therapy-interfering-behaviour", Group: "DBT", Label: "Processed instances of therapy-interfering behavior using nonjudgmental stance and validation."},
	{ID: "dbt-promoted-skills-generalization", Group: "DBT", Label: "Promoted skills generalization by linking session content to real-world application."},
	// RO-DBT
	{ID: "rodbt-overcontrol-concept-impact", Group: "RO-DBT", Label: "Introduced the concept of overcontrol (OC) and explored its impact on interpersonal functioning and emotional expression."},
	{ID: "rodbt-social-signaling-techniques", Group: "RO-DBT", Label: "Practiced social signaling techniques to increase openness and engagement in interpersonal contexts."},
	{ID: "rodbt-diary-cards-self-enquiry", Group: "RO-DBT", Label: "Encouraged self-enquiry using RO-DBT diary cards to reflect on urges, emotions, and social behavior."},
	{ID: "rodbt-maladaptive-perfectionism", Group: "RO-DBT", Label: "Facilitated discussion on the function of maladaptive perfectionism and inhibited emotional expression."},
	{ID: "rodbt-flexible-mind-varies", Group: "RO-DBT", Label: "Taught and practiced the skill of “flexible mind VARIES” to support openness to new experiences."},
	{ID: "rodbt-biosocial-theory-overcontrol", Group: "RO-DBT", Label: "Reviewed biosocial theory of overcontrol to normalize temperament-driven difficulties with emotional expression."},
	// Education - Anxiety
	{ID: "edu-anxiety-physio-cog-beh-components", Group: "Edu - Anxiety", Label: "Provided education on the physiological, cognitive, and behavioral components of anxiety."},
	{ID: "edu-anxiety-avoidance-safety-behaviours", Group: "Edu - Anxiety", Label: "Explained the role of avoidance and safety behaviors in maintaining anxiety cycles."},
	{ID: "edu-anxiety-amygdala-threat-system", Group: "Edu - Anxiety", Label: "Discussed the role of the amygdala and threat system in anxiety response."},
	{ID: "edu-anxiety-exposure-concept", Group: "Edu - Anxiety", Label: "Introduced the concept of exposure as a pathway to tolerance and flexibility."},
	// Education - ADHD
	{ID: "edu-adhd-executive-function-psychoeducation", Group: "Edu - ADHD", Label: "Provided psychoeducation on executive function deficits and their impact on focus, memory, and organization."},
	{ID: "edu-adhd-emotional-relational-impacts", Group: "Edu - ADHD", Label: "Discussed common emotional and relational impacts of ADHD across the lifespan."},
	{ID: "edu-adhd-task-initiation-attention", Group: "Edu - ADHD", Label: "Normalized difficulty with task initiation and sustained attention as neurobiological challenges."},
	{ID: "edu-adhd-external-structure-time-goals", Group: "Edu - ADHD", Label: "Introduced practical strategies for external structure, time management, and goal-setting."},
}

var observationCatalog = []Option{
	// Observations of Client Affect
	{ID: "affect-resistant-hesitant", Group: "Observations of Client Affect", Label: "Client appeared initially resistant or hesitant to engage in the intervention."},
	{ID: "affect-skeptical-technique", Group: "Observations of Client Affect", Label: "Client expressed skepticism about the relevance or helpfulness of the technique."},
	{ID: "affect-became-emotional", Group: "Observations of Client Affect", Label: "Client became visibly emotional during processing."},
	{ID: "affect-struggled-identify", Group: "Observations of Client Affect", Label: "Client struggled to identify thoughts/feelings during the intervention."},
	{ID: "affect-intellectualized", Group: "Observations of Client Affect", Label: "Client intellectualized or shifted focus away from core content."},
	{ID: "affect-relief-insight", Group: "Observations of Client Affect", Label: "Client reported a sense of relief or insight following the intervention."},
	{ID: "affect-confusion-purpose", Group: "Observations of Client Affect", Label: "Client demonstrated confusion about the purpose of the task."},
	{ID: "affect-engaged-deeply", Group: "Observations of Client Affect", Label: "Client engaged deeply with the intervention and reported meaningful resonance."},
	{ID: "affect-minimized-reaction", Group: "Observations of Client Affect", Label: "Client minimized their emotional reaction or dismissed insights gained."},
	{ID: "affect-shame-self-criticism", Group: "Observations of Client Affect", Label: "Client experienced shame or self-criticism in response to a personal realization."},
	{ID: "affect-breakthrough-insight", Group: "Observations of Client Affect", Label: "Client verbalized a breakthrough insight about a long-standing pattern."},
	{ID: "affect-dysregulated-exposure", Group: "Observations of Client Affect", Label: "Client became dysregulated during exposure/emotionally evocative work."},
	{ID: "affect-mismatch-content-affect", Group: "Observations of Client Affect", Label: "Client exhibited a mismatch between content and affect."},
	{ID: "affect-tearful-choked-up", Group: "Observations of Client Affect", Label: "Client appeared tearful or choked up when discussing emotionally salient content."},
	{ID: "affect-frustration-irritability", Group: "Observations of Client Affect", Label: "Client expressed visible frustration or irritability."},
	{ID: "affect-tense-vulnerable-moments", Group: "Observations of Client Affect", Label: "Client became visibly tense (e.g., clenched jaw, crossed arms) during emotionally vulnerable moments."},
	{ID: "affect-shifted-rapidly", Group: "Observations of Client Affect", Label: "Client's affect shifted rapidly."},
	{ID: "affect-increased-expressiveness", Group: "Observations of Client Affect", Label: "Client demonstrated increased emotional expressiveness over the course of the session."},
	{ID: "affect-named-with-specificity", Group: "Observations of Client Affect", Label: "Client named emotions with increased specificity or depth."},
	{ID: "affect-avoidance-of-affect", Group: "Observations of Client Affect", Label: "Client demonstrated avoidance of affect through abrupt topic shifts/rationalization."},
	{ID: "affect-blunted-dissociative", Group: "Observations of Client Affect", Label: "Client's emotional expression seemed blunted or dissociative."},
	{ID: "affect-curiosity-openness", Group: "Observations of Client Affect", Label: "Client demonstrated curiosity or openness toward difficult emotions."},
	{ID: "affect-calm-after-disclosure", Group: "Observations of Client Affect", Label: "Client displayed moments of calm or grounding after emotional disclosure."},
	// Therapist Response
	{ID: "tx-validated-ambivalence", Group: "Therapist Response", Label: "Therapist validated ambivalence and invited exploration of underlying fears or beliefs."},
	{ID: "tx-acknowledged-doubt-linked-goals", Group: "Therapist Response", Label: "Therapist acknowledged doubt and linked intervention to identified goals or values."},
	{ID: "tx-attunement-normalized-emotion", Group: "Therapist Response", Label: "Therapist remained present, offered attunement, and normalized the depth of emotion."},
	{ID: "tx-modeled-curiosity-prompts", Group: "Therapist Response", Label: "Therapist modeled curiosity and used gentle prompts to facilitate connection to internal experience."},
	{ID: "tx-redirected-to-emotion", Group: "Therapist Response", Label: "Therapist gently redirected to emotional experience with compassion and nonjudgment."},
	{ID: "tx-reinforced-integration", Group: "Therapist Response", Label: "Therapist reinforced integration by reflecting on the significance and linking to larger themes."},
	{ID: "tx-clarified-intention-adjusted", Group: "Therapist Response", Label: "Therapist clarified intention, used metaphor or modeling, and adjusted approach collaboratively."},
	{ID: "tx-highlighted-shift-mindful-reflection", Group: "Therapist Response", Label: "Therapist highlighted the shift and encouraged mindful reflection on the experience."},
	{ID: "tx-explored-protective-functions", Group: "Therapist Response", Label: "Therapist explored possible protective functions and invited openness to complexity."},
	{ID: "tx-compassion-focused", Group: "Therapist Response", Label: "Therapist used compassion-focused strategies and affirmed client’s courage in facing discomfort."},
	{ID: "tx-highlighted-growth-consolidation", Group: "Therapist Response", Label: "Therapist highlighted growth, reinforced self-awareness, and supported consolidation of learning."},
	{ID: "tx-contained-grounding-titrated", Group: "Therapist Response", Label: "Therapist contained session with grounding, co-regulation, and titrated pacing."},
	{ID: "tx-explored-incongruence", Group: "Therapist Response", Label: "Therapist gently explored the experience of and potential functions of emotional incongruence."},
}
