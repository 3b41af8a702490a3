package content

import "github.com/Bitlatte/portfolio/internal/stack"

// Projects returns the compiled-in project catalog in display order.
func Projects() []Project {
	return []Project{
		{
			Title:       "Hexagonal Architecture in Spring Boot with DDD - Product Discount Service",
			Slug:        "product-discount-service-hexagonal-architecture",
			Banner:      "/static/projects/hexagonal-arch/banner.png",
			Website:     "https://github.com/miliariadnane/product-discount-service-hexagonal-architecture",
			Description: "A practical demonstration of Hexagonal Architecture in Spring Boot with Domain-Driven Design (DDD) principles for a dynamic Product Discount Service. This project emphasizes clean code, testability, and architectural best practices.",
			ShortDescription: "This application is not business oriented and my focus is mostly on technical part, I just want to implement a sample app from scratch " +
				"with microservice architecture using different technologies, principles and patterns.",
			Repository: "https://github.com/miliariadnane/product-discount-service-hexagonal-architecture",
			Stack: []stack.Stack{
				stack.Java,
				stack.SpringBoot,
				stack.Microservices,
				stack.DistributedSystems,
				stack.Postgres,
				stack.Mongo,
				stack.Docker,
			},
			Dimensions: dims(250, 610),
			Screenshots: []string{
				"/static/projects/hexagonal-arch/banner.png",
				"/static/projects/hexagonal-arch/screenshots/hexa-arch-and-ddd.png",
				"/static/projects/hexagonal-arch/screenshots/hexa-arch-illustration.png",
			},
			Deployment: Deployment{
				Web: "https://github.com/miliariadnane/product-discount-service-hexagonal-architecture",
			},
		},
		{
			Title:       "Herb Classifier - AI APP : Parsley or Coriander ?",
			Slug:        "herb-classifier",
			Banner:      "/static/projects/herb-classifier/banner.png",
			Description: "A simple web application that classifies images of coriander (Qazbor) and parsley (Maadanous) herbs using a deep learning model built with DeepLearning4j.",
			Repository:  "https://github.com/miliariadnane/tasks-planner-app",
			Stack: []stack.Stack{
				stack.Java,
				stack.SpringBoot,
				stack.DeepLearning,
				stack.ImageClassification,
				stack.DeepLearning4j,
				stack.CNN,
			},
			Dimensions:  dims(360, 640),
			Screenshots: []string{},
			Deployment: Deployment{
				Web: "https://github.com/miliariadnane/herb-classifier-api",
			},
			Website: "https://herbify-app.vercel.app/",
		},
		{
			Title:       "Tasks Planner App",
			Slug:        "tasks-planner-app",
			Banner:      "/static/projects/tasksplanner/banner.png",
			Description: "A minimalist collaborative app for scheduling and managing your tasks with the team and getting notifications through discord.",
			Repository:  "https://github.com/miliariadnane/tasks-planner-app",
			Stack:       []stack.Stack{stack.SpringBoot, stack.Angular, stack.Postgres, stack.AWS},
			Dimensions:  dims(360, 640),
			Screenshots: []string{
				"/static/projects/tasksplanner/screenshots/new-task.png",
				"/static/projects/tasksplanner/screenshots/users-list.png",
				"/static/projects/tasksplanner/screenshots/discord-notification.png",
				"/static/projects/tasksplanner/screenshots/monitoring-dashboard.png",
				"/static/projects/tasksplanner/screenshots/main-page.png",
			},
			Deployment: Deployment{
				Web: "https://github.com/miliariadnane/tasks-planner-app",
			},
			Website: "https://github.com/miliariadnane/tasks-planner-app",
		},
		{
			Title:   "Store App With Microservice Architecture with Spring Cloud, Kubernetes and AWS",
			Slug:    "demo-microservices",
			Banner:  "/static/projects/microservices/banner.png",
			Website: "https://github.com/miliariadnane/advanced-microservices",
			Description: "A practical sample store, built with spring frameworks, kubernetes and deployed on AWS. This is an advanced part based on my previous project " +
				"demo-microservices in which I am focusing on security concerns, resiliency, observability and deployment improvements.",
			ShortDescription: "This application is not business oriented and my focus is mostly on technical part, I just want to implement a sample app from scratch " +
				"with microservice architecture using different technologies, principles and patterns.",
			Repository: "https://github.com/miliariadnane/advanced-microservices",
			Stack: []stack.Stack{
				stack.Java,
				stack.SpringBoot,
				stack.DistributedSystems,
				stack.Postgres,
				stack.RabbitMQ,
				stack.Kubernetes,
				stack.Docker,
				stack.AWS,
			},
			Dimensions:  dims(360, 640),
			Screenshots: []string{"/static/projects/microservices/banner.png"},
			Deployment: Deployment{
				Web: "https://github.com/miliariadnane/advanced-microservices",
			},
			SubProjects: []SubProject{
				{
					Title: "Demoing microservices architecture in spring ecosystem with simple e-commerce application",
					Description: "This repo contains demo about how to build simple ecommerce microservices app from scratch step by step based on spring boot " +
						"(spring cloud, spring cloud gateway, spring data JPA, spring web, ...), deployed on Kubernetes and AWS using EKS. The app composed of " +
						"5 microservices [customer - product - order - payment - notification] communicating with each other using REST API (+ Open Feign) " +
						"and messaging system (RabbitMQ).",
					Repository: "https://github.com/miliariadnane/demo-microservices",
				},
			},
		},
	}
}
