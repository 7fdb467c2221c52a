package agent

import "github.com/tractis/proposal-engine/internal/entity"

// Company sections injected into every proposal after the designer stage.
// They are never produced by a model and always override whatever the model
// returned for them.

var tractisContact = entity.ContactInfo{
	Name:     "Gerhard Neumann",
	Role:     "Founder & CEO",
	Email:    "gerhard@tractis.ai",
	Phone:    "+56 990210364",
	Website:  "https://tractis.ai",
	LinkedIn: "https://linkedin.com/in/gneumannv",
	Calendly: nil,
	CTA:      "Schedule a call to discuss how we can transform your proposal process",
}

const tractisWhyUs = `## Why Tractis?

**Deep AI + Logistics Expertise**
We're not just AI developers - we're logistics technology specialists who build intelligent systems for complex operational challenges. Our team combines expert AI engineering with deep domain knowledge in supply chain, last-mile delivery, and logistics operations.

**World-Class Infrastructure**
We don't just solve problems - we architect solutions that scale. Every system we build is designed with production-grade infrastructure that can handle whatever you throw at it. Reliability isn't an afterthought; it's foundational. Our DevOps practices ensure uptime, performance, and resilience from day one.

**Security & Privacy First**
Your data is your business. Our AI agents are built with strict data isolation - they only access information they're authorized to see, never leaking data between customers or contexts. When you ask an agent a question, it retrieves answers exclusively from your designated knowledge base using RAG technology. We engineer privacy into every layer: secure data handling, encrypted storage, and compliance-ready architecture. Your sensitive information stays yours.

**Proven Track Record Across Industries**

🛒 **FMCG/CPG Sector**
- **Route Optimizer**: Outperforms standard SaaS solutions by adapting to client-specific business rules and constraints. Delivers measurable cost savings through smarter routing.
- **Transport Control Tower**: Proactive AI agents that monitor fleet operations in real-time, detect issues before they escalate, and provide intelligent recommendations to drivers and operations teams.

📦 **E-commerce**
- **WISMO Agents**: Keep customers informed automatically, handle rescheduling, and trigger reverse logistics - reducing support tickets and improving customer satisfaction without human intervention.

🚚 **Last Mile Operations**
- **Crossdock Operations SaaS**: Complete visibility and control over pickup, reception, distribution, and dispatch. Real-time business intelligence that enables data-driven decisions and operational excellence.

**Our Three Pillars**

1. **Problem Solving**: We focus on outcomes, not features. Every solution is designed to deliver measurable business value.

2. **Rock-Solid Infrastructure**: Production-grade systems that scale, perform, and never let you down. Built to handle enterprise workloads from day one.

3. **Security & Privacy**: Your data is isolated, encrypted, and protected. Our agents are designed to prevent information leakage and maintain strict data boundaries.

**Why This Matters for You**
The same discipline that ensures delivery trucks stay on route, operations run 24/7, and sensitive logistics data stays secure now powers your proposal generation. We build systems that work, scale, protect your data, and deliver ROI.`

// applyFixedSections overwrites the why-us and contact sections with company
// data, unconditionally.
func applyFixedSections(p *entity.FinalProposal) {
	p.WhyUs = tractisWhyUs
	p.WhyUsVariant = entity.DefaultWhyUsVariant
	p.Contact = tractisContact
	p.ContactVariant = entity.DefaultContactVariant
}
